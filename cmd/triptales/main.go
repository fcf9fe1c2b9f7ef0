// triptales is a command-line client for the TripTales backend. It drives
// the same SDK the mobile client embeds: session management, the typed API
// bindings, image upload, and the trip submission workflow.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"triptales/internal/api"
	"triptales/internal/config"
	"triptales/internal/credstore"
	"triptales/internal/geo"
	"triptales/internal/models"
	"triptales/internal/session"
	"triptales/internal/trip"
	"triptales/internal/upload"
)

func main() {
	cmd := flag.String("cmd", "", "Command: register|login|logout|whoami|submit|friends|add-friend|countries|bookmarks")
	username := flag.String("username", "", "Username (register/login)")
	email := flag.String("email", "", "Email (register)")
	password := flag.String("password", "", "Password (register/login)")
	title := flag.String("title", "", "Trip title (submit)")
	description := flag.String("description", "", "Trip description (submit)")
	imagePath := flag.String("image", "", "Path to trip photo (submit)")
	location := flag.String("location", "", `Resolved location, e.g. "Sapporo, Japan" (submit)`)
	lat := flag.Float64("lat", 0, "Latitude (submit)")
	lon := flag.Float64("lon", 0, "Longitude (submit)")
	companions := flag.String("companions", "", "Comma-separated companion user ids (submit)")
	friendID := flag.String("friend", "", "User id (add-friend)")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	// (0, 0) is a legal position, so flag presence decides whether
	// coordinates ride along, not the values.
	hasCoords := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "lat" || f.Name == "lon" {
			hasCoords = true
		}
	})

	if *cmd == "" {
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	store, err := credstore.Open(cfg.Store.Dir)
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	sessions, err := session.NewManager(store)
	if err != nil {
		fatal(err)
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.HTTPTimeout, sessions, logger)

	var uploader *upload.Uploader
	if cfg.IsUploadConfigured() {
		uploader = upload.New(cfg.UploadEndpoint(), cfg.Upload.Preset, cfg.Upload.Folder, cfg.API.HTTPTimeout)
	}

	ctx := context.Background()

	switch *cmd {
	case "register":
		token, id, err := client.Register(ctx, *username, *email, *password)
		if err != nil {
			fatal(err)
		}
		if err := sessions.Login(token, id); err != nil {
			fatal(err)
		}
		fmt.Printf("Registered and logged in as %s\n", id.Username)

	case "login":
		token, id, err := client.Login(ctx, *username, *password)
		if err != nil {
			fatal(err)
		}
		if err := sessions.Login(token, id); err != nil {
			fatal(err)
		}
		fmt.Printf("Logged in as %s\n", id.Username)

	case "logout":
		if err := sessions.Logout(); err != nil {
			fatal(err)
		}
		fmt.Println("Logged out")

	case "whoami":
		sess, ok := sessions.Current()
		if !ok {
			fmt.Println("Not logged in")
			return
		}
		fmt.Printf("%s <%s> (user %s)\n", sess.Username, sess.Email, sess.UserID)
		if !sess.ExpiresAt.IsZero() {
			fmt.Printf("Token expires %s\n", sess.ExpiresAt)
		}

	case "submit":
		requireLogin(sessions)
		runSubmit(ctx, client, uploader, logger, submitArgs{
			title:       *title,
			description: *description,
			imagePath:   *imagePath,
			location:    *location,
			lat:         *lat,
			lon:         *lon,
			hasCoords:   hasCoords,
			companions:  *companions,
		})

	case "friends":
		requireLogin(sessions)
		friends, err := client.Friends(ctx)
		if err != nil {
			fatal(err)
		}
		for _, f := range friends {
			fmt.Printf("%s\t%s\n", f.UserID, f.Username)
		}

	case "add-friend":
		requireLogin(sessions)
		if err := client.AddFriend(ctx, *friendID); err != nil {
			fatal(err)
		}
		fmt.Println("Friend added")

	case "countries":
		requireLogin(sessions)
		countries, err := client.Countries(ctx)
		if err != nil {
			fatal(err)
		}
		for _, c := range countries {
			fmt.Printf("%s\t%s\n", c.CountryID, c.Name)
		}

	case "bookmarks":
		requireLogin(sessions)
		bookmarks, err := client.Bookmarks(ctx)
		if err != nil {
			fatal(err)
		}
		for _, b := range bookmarks {
			fmt.Printf("%s\ttrip %s\n", b.BookmarkID, b.TripID)
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", *cmd)
		os.Exit(1)
	}
}

type submitArgs struct {
	title, description, imagePath, location, companions string
	lat, lon                                            float64
	hasCoords                                           bool
}

// buildDraft assembles the trip draft from the parsed flags. Coordinates
// are attached only when the flags were present on the command line.
func buildDraft(args submitArgs, loc geo.Location) (models.TripDraft, error) {
	draft := models.TripDraft{
		Title:        args.title,
		Description:  args.description,
		LocationName: loc.Locality,
	}
	if args.hasCoords {
		draft.Latitude = &loc.Latitude
		draft.Longitude = &loc.Longitude
	}
	if args.imagePath != "" {
		data, err := os.ReadFile(args.imagePath)
		if err != nil {
			return models.TripDraft{}, err
		}
		draft.ImageBytes = data
	}
	if args.companions != "" {
		for _, id := range strings.Split(args.companions, ",") {
			if id = strings.TrimSpace(id); id != "" {
				draft.CompanionIDs = append(draft.CompanionIDs, id)
			}
		}
	}
	return draft, nil
}

func runSubmit(ctx context.Context, client *api.Client, uploader *upload.Uploader, logger *slog.Logger, args submitArgs) {
	// The mobile client resolves the device position in the background;
	// here the flags stand in for the OS location service.
	resolver := geo.Static(geo.Location{
		Latitude:  args.lat,
		Longitude: args.lon,
		Locality:  args.location,
	})
	loc, err := resolver.Resolve(ctx)
	if err != nil {
		fatal(err)
	}

	draft, err := buildDraft(args, loc)
	if err != nil {
		fatal(err)
	}

	var imageUploader trip.ImageUploader
	if uploader != nil {
		imageUploader = uploader
	}
	submitter := trip.NewSubmitter(client, imageUploader, logger)

	result, err := submitter.Submit(ctx, draft)
	if err != nil {
		fatal(err)
	}

	if result.TripID == "" {
		fmt.Println("Trip submitted, but the server response could not be read; check the feed before resubmitting.")
		return
	}
	fmt.Printf("Trip created: %s\n", result.TripID)
	if n := len(draft.CompanionIDs); n > 0 {
		fmt.Printf("Companions attached: %d/%d\n", result.Attached(), n)
		if result.AttachErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", result.AttachErr)
		}
	}
}

func requireLogin(sessions *session.Manager) {
	if _, ok := sessions.CurrentToken(); !ok {
		fmt.Fprintln(os.Stderr, "Not logged in. Run with -cmd login first.")
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
