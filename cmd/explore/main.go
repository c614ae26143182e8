package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - places:   List the catalog (seed and locally added places)
// - show:     Select a place, print its expanded story and optionally narrate it
// - add:      Add a place by address
// - quote:    Read, write or export the personal quote of a place
// - memory:   Attach a photo memory to a place
// - timeline: Print the photo memories of a place in order

func main() {
	placesCmd := flag.NewFlagSet("places", flag.ExitOnError)
	showCmd := flag.NewFlagSet("show", flag.ExitOnError)
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	quoteCmd := flag.NewFlagSet("quote", flag.ExitOnError)
	memoryCmd := flag.NewFlagSet("memory", flag.ExitOnError)
	timelineCmd := flag.NewFlagSet("timeline", flag.ExitOnError)

	// places parameters
	placesBBox := placesCmd.String("bbox", "", "Only places inside minLng,minLat,maxLng,maxLat")

	// show parameters
	showID := showCmd.String("id", "", "Place ID to select")
	showDemo := showCmd.Bool("demo", false, "Select the first seed place")
	showNarrate := showCmd.Bool("narrate", false, "Request narration of the displayed story")
	showOut := showCmd.String("out", "", "Keep the narration audio at this path")

	// add parameters
	addName := addCmd.String("name", "", "Place name")
	addAddress := addCmd.String("address", "", "Street address to geocode")
	addStory := addCmd.String("story", "", "What happened here")
	addStart := addCmd.String("start", "", "Start date or year")
	addEnd := addCmd.String("end", "", "End date or year")
	addStatus := addCmd.String("status", "active", "active, threatened or erased")
	addCity := addCmd.String("city", "", "Locality label")
	addReason := addCmd.String("reason", "", "Why it changed")
	addQuote := addCmd.String("quote", "", "Short quotation")

	// quote parameters
	quoteID := quoteCmd.String("id", "", "Place ID")
	quoteSet := quoteCmd.String("set", "", "Replace the quote with this text")
	quoteWhen := quoteCmd.String("when", "", "Month and year of the memory, e.g. \"June 1998\"")
	quoteExport := quoteCmd.Bool("export", false, "Write the quote as a plain-text keepsake")
	quoteOut := quoteCmd.String("o", "", "Keepsake file (default personal-memory-<id>.txt, \"-\" for stdout)")

	// memory parameters
	memoryID := memoryCmd.String("id", "", "Place ID")
	memoryImage := memoryCmd.String("image", "", "Path to the photo")
	memoryCaption := memoryCmd.String("caption", "", "Caption (up to 200 characters)")
	memoryYear := memoryCmd.Int("year", 0, "Year the photo was taken")
	memoryMonth := memoryCmd.Int("month", 0, "Month the photo was taken (1-12)")

	// timeline parameters
	timelineID := timelineCmd.String("id", "", "Place ID")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := exploreFlags{
		Places: placesFlags{cmd: placesCmd, bbox: placesBBox},
		Show:   showFlags{cmd: showCmd, id: showID, demo: showDemo, narrate: showNarrate, out: showOut},
		Add: addFlags{
			cmd:     addCmd,
			name:    addName,
			address: addAddress,
			story:   addStory,
			start:   addStart,
			end:     addEnd,
			status:  addStatus,
			city:    addCity,
			reason:  addReason,
			quote:   addQuote,
		},
		Quote: quoteFlags{cmd: quoteCmd, id: quoteID, set: quoteSet, when: quoteWhen, export: quoteExport, out: quoteOut},
		Memory: memoryFlags{
			cmd:     memoryCmd,
			id:      memoryID,
			image:   memoryImage,
			caption: memoryCaption,
			year:    memoryYear,
			month:   memoryMonth,
		},
		Timeline: timelineFlags{cmd: timelineCmd, id: timelineID},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type exploreFlags struct {
	Places   placesFlags
	Show     showFlags
	Add      addFlags
	Quote    quoteFlags
	Memory   memoryFlags
	Timeline timelineFlags
}

type placesFlags struct {
	cmd  *flag.FlagSet
	bbox *string
}

type showFlags struct {
	cmd     *flag.FlagSet
	id      *string
	demo    *bool
	narrate *bool
	out     *string
}

type addFlags struct {
	cmd     *flag.FlagSet
	name    *string
	address *string
	story   *string
	start   *string
	end     *string
	status  *string
	city    *string
	reason  *string
	quote   *string
}

type quoteFlags struct {
	cmd    *flag.FlagSet
	id     *string
	set    *string
	when   *string
	export *bool
	out    *string
}

type memoryFlags struct {
	cmd     *flag.FlagSet
	id      *string
	image   *string
	caption *string
	year    *int
	month   *int
}

type timelineFlags struct {
	cmd *flag.FlagSet
	id  *string
}

func runSubcommand(ctx context.Context, flags *exploreFlags) error {
	var fs *flag.FlagSet
	switch os.Args[1] {
	case "places":
		fs = flags.Places.cmd
	case "show":
		fs = flags.Show.cmd
	case "add":
		fs = flags.Add.cmd
	case "quote":
		fs = flags.Quote.cmd
	case "memory":
		fs = flags.Memory.cmd
	case "timeline":
		fs = flags.Timeline.cmd
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}

	if err := fs.Parse(os.Args[2:]); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", fs.Name())
	}

	sh, err := newShell(ctx, os.Stdout)
	if err != nil {
		return err
	}
	defer sh.Close()

	switch fs.Name() {
	case "places":
		return sh.listPlaces(ctx, *flags.Places.bbox)
	case "show":
		return sh.show(ctx, &flags.Show)
	case "add":
		return sh.addPlace(ctx, &flags.Add)
	case "quote":
		return sh.quote(ctx, &flags.Quote)
	case "memory":
		return sh.addMemory(ctx, &flags.Memory)
	default:
		return sh.timeline(ctx, *flags.Timeline.id)
	}
}

func printUsage() {
	fmt.Println("Usage: explore <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  places    List the catalog")
	fmt.Println("  show      Select a place and print its story")
	fmt.Println("  add       Add a place by address")
	fmt.Println("  quote     Read, write or export a personal quote")
	fmt.Println("  memory    Attach a photo memory to a place")
	fmt.Println("  timeline  Print the photo memories of a place")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  explore show -demo -narrate")
	fmt.Println("  explore add -name \"The Center\" -address \"123 Main St, Springfield, IL\" -story \"...\" -start 1978")
	fmt.Println("  explore quote -id the-stud -set \"We danced until the lights came on.\" -when \"June 1998\" -export")
	fmt.Println("  explore memory -id the-stud -image pier.jpg -caption \"Pride 1999\" -year 1999 -month 6")
}
