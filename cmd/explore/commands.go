package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"whatwashere/internal/domain/entity"
	domainerrors "whatwashere/internal/domain/errors"
	"whatwashere/internal/infra/seed"
	"whatwashere/internal/usecase"
	"whatwashere/internal/util"

	"github.com/pkg/errors"
)

func (s *shell) listPlaces(ctx context.Context, bbox string) error {
	places := s.catalog.AllPlaces(ctx)
	if bbox != "" {
		bound, err := entity.ParseBound(bbox)
		if err != nil {
			return err
		}
		places = s.catalog.PlacesInBound(ctx, bound)
	}

	fmt.Fprintf(s.out, "Map center %.4f, %.4f  zoom %d\n\n", seed.MapCenter.Lat(), seed.MapCenter.Lon(), seed.MapZoom)

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tYEARS\tLAT\tLNG\tSOURCE")
	for _, p := range places {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.4f\t%.4f\t%s\n",
			p.ID, p.Name, p.Status, p.YearsLabel(), p.Latitude, p.Longitude, p.Source)
	}

	return w.Flush()
}

func (s *shell) show(ctx context.Context, flags *showFlags) error {
	place, err := s.resolvePlace(ctx, *flags.id, *flags.demo)
	if err != nil {
		return err
	}

	s.selection.SelectPlace(ctx, place)
	s.selection.Wait()

	snap := s.selection.Snapshot()
	s.printPanel(ctx, snap)

	if !*flags.narrate {
		return nil
	}

	if !s.selection.RequestNarration(ctx) {
		fmt.Fprintln(s.out, "Narration: nothing to narrate")

		return nil
	}
	s.selection.Wait()

	snap = s.selection.Snapshot()
	if snap.Narration != entity.NarrationNarrated || snap.Audio == nil {
		fmt.Fprintln(s.out, "Narration: not available right now, try again later")

		return nil
	}

	fmt.Fprintf(s.out, "Narration: %s (%s)\n", snap.Audio.ContentType, util.FormatBytes(snap.Audio.Size))
	if *flags.out == "" {
		return nil
	}

	// the clip is released on exit, so keep a copy
	if err := copyFile(snap.Audio.Path, *flags.out); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Saved narration to %s\n", *flags.out)

	return nil
}

func (s *shell) printPanel(ctx context.Context, snap usecase.SelectionSnapshot) {
	p := snap.Place

	fmt.Fprintf(s.out, "%s\n", p.Name)
	if p.City != "" {
		fmt.Fprintf(s.out, "%s\n", p.City)
	}
	fmt.Fprintf(s.out, "%s · %s\n", strings.ToUpper(string(p.Status)), p.YearsLabel())
	if p.Reason != "" {
		fmt.Fprintf(s.out, "Why: %s\n", p.Reason)
	}
	if len(p.Communities) > 0 {
		fmt.Fprintf(s.out, "Communities: %s\n", strings.Join(p.Communities, ", "))
	}
	fmt.Fprintf(s.out, "\n%s\n", snap.DisplayText)
	if p.Quote != "" {
		fmt.Fprintf(s.out, "\n“%s”\n", p.Quote)
	}

	if quote := s.memories.GetQuoteMemory(ctx, p.ID); quote != nil && quote.Memory != "" {
		fmt.Fprintf(s.out, "\nYour memory: %s\n", quote.Memory)
	}
	if n := len(s.memories.Timeline(ctx, p.ID)); n > 0 {
		fmt.Fprintf(s.out, "Photo memories: %d (explore timeline -id %s)\n", n, p.ID)
	}
	fmt.Fprintln(s.out)
}

func (s *shell) addPlace(ctx context.Context, flags *addFlags) error {
	place, err := s.catalog.AddUserPlace(ctx, &usecase.AddPlaceInput{
		Name:      *flags.name,
		Address:   *flags.address,
		Story:     *flags.story,
		StartDate: *flags.start,
		EndDate:   *flags.end,
		Status:    entity.PlaceStatus(*flags.status),
		City:      *flags.city,
		Reason:    *flags.reason,
		Quote:     *flags.quote,
	})
	if errors.Is(err, domainerrors.ErrGeocodeNotFound) {
		return errors.New("no match for that address, try adding a city and state")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Added %s at %.5f, %.5f\n%s\n", place.ID, place.Latitude, place.Longitude, place.FullAddress)

	return nil
}

func (s *shell) quote(ctx context.Context, flags *quoteFlags) error {
	place, err := s.catalog.GetPlaceByID(ctx, *flags.id)
	if err != nil {
		return err
	}

	if *flags.set != "" {
		s.memories.SetQuoteMemory(ctx, place.ID, *flags.set, *flags.when)
	}

	quote := s.memories.GetQuoteMemory(ctx, place.ID)
	if !*flags.export {
		if quote == nil {
			fmt.Fprintf(s.out, "No memory saved for %s\n", place.Name)

			return nil
		}
		fmt.Fprintf(s.out, "%s\n", quote.Memory)
		if quote.MonthYear != "" {
			fmt.Fprintf(s.out, "(%s)\n", quote.MonthYear)
		}

		return nil
	}

	text := s.memories.ExportQuote(place, quote)
	path := *flags.out
	switch path {
	case "-":
		_, err := fmt.Fprintln(s.out, text)

		return err
	case "":
		path = "personal-memory-" + place.ID + ".txt"
	}

	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return errors.Wrap(err, "write keepsake")
	}
	fmt.Fprintf(s.out, "Saved %s\n", path)

	return nil
}

func (s *shell) addMemory(ctx context.Context, flags *memoryFlags) error {
	place, err := s.catalog.GetPlaceByID(ctx, *flags.id)
	if err != nil {
		return err
	}

	var image string
	if *flags.image != "" {
		data, err := os.ReadFile(*flags.image)
		if err != nil {
			return errors.Wrap(err, "read image")
		}
		image = "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data)
	}

	memory, err := s.memories.AddPhotoMemory(ctx, place.ID, &usecase.PhotoMemoryInput{
		ImageBase64: image,
		Caption:     *flags.caption,
		Year:        *flags.year,
		Month:       *flags.month,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Saved memory %s for %s (%04d-%02d)\n", memory.ID, place.Name, memory.Year, memory.Month)

	return nil
}

func (s *shell) timeline(ctx context.Context, id string) error {
	place, err := s.catalog.GetPlaceByID(ctx, id)
	if err != nil {
		return err
	}

	memories := s.memories.Timeline(ctx, place.ID)
	if len(memories) == 0 {
		fmt.Fprintf(s.out, "No photo memories for %s yet\n", place.Name)

		return nil
	}

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tCAPTION\tPHOTO")
	for _, m := range memories {
		fmt.Fprintf(w, "%04d-%02d\t%s\t%s\n", m.Year, m.Month, m.Caption, util.FormatBytes(imageSize(m.ImageBase64)))
	}

	return w.Flush()
}

func (s *shell) resolvePlace(ctx context.Context, id string, demo bool) (*entity.Place, error) {
	if demo {
		places := s.catalog.AllPlaces(ctx)
		if len(places) == 0 {
			return nil, errors.New("catalog is empty")
		}

		return places[0], nil
	}
	if id == "" {
		return nil, errors.New("-id or -demo is required")
	}

	return s.catalog.GetPlaceByID(ctx, id)
}

// imageSize estimates the decoded size of a base64 data URL.
func imageSize(dataURL string) int64 {
	if i := strings.IndexByte(dataURL, ','); i >= 0 {
		dataURL = dataURL[i+1:]
	}

	return int64(base64.StdEncoding.DecodedLen(len(dataURL)))
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "open narration audio")
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "create audio copy")
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()

		return errors.Wrap(err, "copy narration audio")
	}

	return errors.WithStack(out.Close())
}
