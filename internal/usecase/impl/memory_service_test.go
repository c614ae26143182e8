package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"whatwashere/internal/domain/entity"
	domainerrors "whatwashere/internal/domain/errors"
	"whatwashere/internal/errors"
	"whatwashere/internal/infra/persistence/device"
	"whatwashere/internal/infra/persistence/tier"
	mockRepo "whatwashere/internal/mocks/repository"
	"whatwashere/internal/usecase"
	"whatwashere/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryServiceFixtures holds all test dependencies for memory service tests.
type memoryServiceFixtures struct {
	service *memoryService
	tier    *mockRepo.MockMemoryTier
	quotes  *mockRepo.MockQuoteRepository
}

func createTestMemoryService(t *testing.T) memoryServiceFixtures {
	memoryTier := mockRepo.NewMockMemoryTier(t)
	quotes := mockRepo.NewMockQuoteRepository(t)

	svc := NewMemoryService(memoryTier, quotes, validator.New(), newTestLogger()).(*memoryService)
	svc.now = func() time.Time { return fixedNow }
	svc.newID = func() string { return "mem-1" }

	return memoryServiceFixtures{
		service: svc,
		tier:    memoryTier,
		quotes:  quotes,
	}
}

// newDeviceMemoryService wires the service onto real in-process device storage.
func newDeviceMemoryService() *memoryService {
	storage := device.NewMemoryStorage(5 << 20)
	svc := NewMemoryService(
		tier.NewDeviceTier(storage),
		device.NewQuoteRepository(storage),
		validator.New(),
		newTestLogger(),
	).(*memoryService)
	svc.now = func() time.Time { return fixedNow }

	return svc
}

func validPhotoInput() *usecase.PhotoMemoryInput {
	return &usecase.PhotoMemoryInput{
		ImageBase64: "data:image/png;base64,iVBORw0KGgo=",
		Caption:     "  Dancing on the pier  ",
		Year:        2019,
		Month:       6,
	}
}

func TestMemoryService_LoadMemories_FailureYieldsEmpty(t *testing.T) {
	fx := createTestMemoryService(t)
	ctx := context.Background()

	fx.tier.EXPECT().Load(ctx).Return(nil, errors.New("every tier failed"))

	memories := fx.service.LoadMemories(ctx)
	require.NotNil(t, memories)
	assert.Empty(t, memories)
}

func TestMemoryService_LoadMemories_Idempotent(t *testing.T) {
	svc := newDeviceMemoryService()
	ctx := context.Background()

	svc.SaveMemories(ctx, entity.MemoryMap{
		"the-stud": {{ID: "a", PlaceID: "the-stud", Caption: "first", Year: 2001, Month: 2, CreatedAt: 1}},
	})

	assert.Equal(t, svc.LoadMemories(ctx), svc.LoadMemories(ctx))
}

func TestMemoryService_SaveThenLoadRoundTrip(t *testing.T) {
	svc := newDeviceMemoryService()
	ctx := context.Background()

	doc := entity.MemoryMap{
		"the-stud": {
			{ID: "a", PlaceID: "the-stud", ImageBase64: "x", Caption: "one", Year: 1999, Month: 1, CreatedAt: 10},
			{ID: "b", PlaceID: "the-stud", ImageBase64: "y", Caption: "two", Year: 2005, Month: 7, CreatedAt: 20},
		},
		"la-esquina": {},
	}

	svc.SaveMemories(ctx, doc)

	assert.Equal(t, doc, svc.LoadMemories(ctx))
}

func TestMemoryService_SaveMemories_FailureIsSwallowed(t *testing.T) {
	fx := createTestMemoryService(t)
	ctx := context.Background()

	fx.tier.EXPECT().Save(ctx, mock.Anything).Return(errors.New("quota exceeded"))

	assert.NotPanics(t, func() {
		fx.service.SaveMemories(ctx, entity.MemoryMap{})
	})
}

func TestMemoryService_AddPhotoMemory_StampsAndAppends(t *testing.T) {
	fx := createTestMemoryService(t)
	ctx := context.Background()

	existing := entity.PhotoMemory{ID: "old", PlaceID: "the-stud", Caption: "before", Year: 2000, Month: 1}
	fx.tier.EXPECT().Load(ctx).Return(entity.MemoryMap{"the-stud": {existing}}, nil)

	var saved entity.MemoryMap
	fx.tier.EXPECT().
		Save(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, m entity.MemoryMap) error {
			saved = m

			return nil
		})

	memory, err := fx.service.AddPhotoMemory(ctx, "the-stud", validPhotoInput())
	require.NoError(t, err)

	assert.Equal(t, "mem-1", memory.ID)
	assert.Equal(t, "the-stud", memory.PlaceID)
	assert.Equal(t, "Dancing on the pier", memory.Caption)
	assert.Equal(t, fixedNow.UnixMilli(), memory.CreatedAt)

	require.Len(t, saved["the-stud"], 2)
	assert.Equal(t, existing, saved["the-stud"][0])
	assert.Equal(t, *memory, saved["the-stud"][1])
}

func TestMemoryService_AddPhotoMemory_TruncatesCaption(t *testing.T) {
	fx := createTestMemoryService(t)
	ctx := context.Background()

	fx.tier.EXPECT().Load(ctx).Return(entity.MemoryMap{}, nil)
	fx.tier.EXPECT().Save(ctx, mock.Anything).Return(nil)

	input := validPhotoInput()
	input.Caption = strings.Repeat("é", entity.MaxCaptionLength+25)

	memory, err := fx.service.AddPhotoMemory(ctx, "the-stud", input)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("é", entity.MaxCaptionLength), memory.Caption)
}

func TestMemoryService_AddPhotoMemory_StorageFailureStillSucceeds(t *testing.T) {
	fx := createTestMemoryService(t)
	ctx := context.Background()

	fx.tier.EXPECT().Load(ctx).Return(nil, errors.New("offline"))
	fx.tier.EXPECT().Save(ctx, mock.Anything).Return(errors.New("offline"))

	memory, err := fx.service.AddPhotoMemory(ctx, "the-stud", validPhotoInput())
	require.NoError(t, err)
	assert.NotNil(t, memory)
}

func TestMemoryService_AddPhotoMemory_Validation(t *testing.T) {
	tests := []struct {
		name    string
		placeID string
		mutate  func(*usecase.PhotoMemoryInput)
	}{
		{name: "missing place", placeID: " ", mutate: func(*usecase.PhotoMemoryInput) {}},
		{name: "missing image", placeID: "p", mutate: func(in *usecase.PhotoMemoryInput) { in.ImageBase64 = "" }},
		{name: "blank caption", placeID: "p", mutate: func(in *usecase.PhotoMemoryInput) { in.Caption = "   " }},
		{name: "month zero", placeID: "p", mutate: func(in *usecase.PhotoMemoryInput) { in.Month = 0 }},
		{name: "month thirteen", placeID: "p", mutate: func(in *usecase.PhotoMemoryInput) { in.Month = 13 }},
		{name: "year too early", placeID: "p", mutate: func(in *usecase.PhotoMemoryInput) { in.Year = 1899 }},
		{name: "year in the future", placeID: "p", mutate: func(in *usecase.PhotoMemoryInput) { in.Year = fixedNow.Year() + 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMemoryService(t)
			input := validPhotoInput()
			tt.mutate(input)

			memory, err := fx.service.AddPhotoMemory(context.Background(), tt.placeID, input)
			assert.Nil(t, memory)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestMemoryService_AddPhotoMemory_NextYearAllowed(t *testing.T) {
	svc := newDeviceMemoryService()
	input := validPhotoInput()
	input.Year = fixedNow.Year() + 1

	_, err := svc.AddPhotoMemory(context.Background(), "the-stud", input)
	assert.NoError(t, err)
}

func TestMemoryService_Timeline_SortedByYearMonthCreatedAt(t *testing.T) {
	fx := createTestMemoryService(t)
	ctx := context.Background()

	fx.tier.EXPECT().Load(ctx).Return(entity.MemoryMap{
		"the-stud": {
			{ID: "c", Year: 2020, Month: 5, CreatedAt: 100},
			{ID: "b", Year: 2020, Month: 5, CreatedAt: 10},
			{ID: "a", Year: 2019, Month: 12, CreatedAt: 50},
		},
	}, nil)

	timeline := fx.service.Timeline(ctx, "the-stud")

	require.Len(t, timeline, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{timeline[0].ID, timeline[1].ID, timeline[2].ID})
}

func TestMemoryService_QuoteRoundTrip(t *testing.T) {
	svc := newDeviceMemoryService()
	ctx := context.Background()

	svc.SetQuoteMemory(ctx, "the-stud", "We danced here until the lights came on.", "June 1998")

	quote := svc.GetQuoteMemory(ctx, "the-stud")
	require.NotNil(t, quote)
	assert.Equal(t, "We danced here until the lights came on.", quote.Memory)
	assert.Equal(t, "June 1998", quote.MonthYear)
	require.NotNil(t, quote.SavedAt)
	assert.True(t, fixedNow.Equal(*quote.SavedAt))

	assert.Nil(t, svc.GetQuoteMemory(ctx, "la-esquina"))
}

func TestMemoryService_SetQuoteMemory_TruncatesAndIgnoresFailure(t *testing.T) {
	fx := createTestMemoryService(t)
	ctx := context.Background()

	long := strings.Repeat("a", entity.MaxQuoteLength+10)
	fx.quotes.EXPECT().
		Set(ctx, "the-stud", mock.MatchedBy(func(q entity.QuoteMemory) bool {
			return len(q.Memory) == entity.MaxQuoteLength
		})).
		Return(errors.New("quota exceeded"))

	assert.NotPanics(t, func() {
		fx.service.SetQuoteMemory(ctx, "the-stud", long, "")
	})
}

func TestMemoryService_GetQuoteMemory_UnreadableIsNil(t *testing.T) {
	fx := createTestMemoryService(t)
	ctx := context.Background()

	fx.quotes.EXPECT().Get(ctx, "the-stud").Return(nil, errors.New("corrupt"))

	assert.Nil(t, fx.service.GetQuoteMemory(ctx, "the-stud"))
}

func TestMemoryService_ExportQuote(t *testing.T) {
	fx := createTestMemoryService(t)

	place := &entity.Place{ID: "the-stud", Name: "The Stud", City: "San Francisco, CA"}

	t.Run("with text and date", func(t *testing.T) {
		out := fx.service.ExportQuote(place, &entity.QuoteMemory{Memory: " Last call. ", MonthYear: "May 2020"})

		assert.Equal(t, strings.Join([]string{
			"What Was Here — Personal Memory",
			"",
			"Place: The Stud",
			"Location: San Francisco, CA",
			"When: May 2020",
			"",
			"Quote:",
			"Last call.",
			"",
			"Saved locally on: 2024-03-14",
		}, "\n"), out)
	})

	t.Run("empty quote", func(t *testing.T) {
		out := fx.service.ExportQuote(place, nil)

		assert.Contains(t, out, "Quote:\n(no text)\n")
		assert.NotContains(t, out, "When:")
	})
}
