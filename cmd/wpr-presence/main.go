package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dnlklmn/wpr-presence/internal/api"
	"github.com/dnlklmn/wpr-presence/internal/config"
	"github.com/dnlklmn/wpr-presence/internal/kvstore"
	"github.com/dnlklmn/wpr-presence/internal/logger"
	"github.com/dnlklmn/wpr-presence/internal/mockapi"
	"github.com/dnlklmn/wpr-presence/internal/models"
	"github.com/dnlklmn/wpr-presence/internal/server"
	"github.com/dnlklmn/wpr-presence/internal/session"

	"go.uber.org/zap"
)

const usage = `Usage: wpr-presence [-config path] <command>

Commands:
  login <username> <password>   authenticate and store the session
  logout                        clear the stored session
  status                        show whether a valid session exists
  employees                     list the employee roster
  locations                     list the markets
  submit                        record a shift (see submit -h)
  history [-start] [-end]       list recorded shifts
  serve                         run the local demo backend
`

func main() {
	configPath := flag.String("config", "config/local.yaml", "Path to configuration file")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := flag.Arg(0)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	storagePath := cfg.StoragePath
	if storagePath == "" {
		storagePath, err = kvstore.DefaultPath()
		if err != nil {
			log.Fatal("Failed to resolve storage path", zap.Error(err))
		}
	}

	store, err := kvstore.New(storagePath, log.Logger)
	if err != nil {
		log.Fatal("Failed to open local storage", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Failed to close local storage", zap.Error(err))
		}
	}()

	sess := session.NewManager(store, log.Logger)
	records := mockapi.NewRecordStore(store, log.Logger)
	client := api.New(cfg, sess, records, log.Logger)

	if err := run(command, flag.Args()[1:], cfg, client, sess, records, log); err != nil {
		log.Error("Command failed", zap.String("command", command), zap.Error(err))
		os.Exit(1)
	}
}

func run(command string, args []string, cfg *config.Config, client api.Client, sess *session.Manager, records *mockapi.RecordStore, log *logger.Logger) error {
	switch command {
	case "login":
		if len(args) != 2 {
			return fmt.Errorf("usage: login <username> <password>")
		}
		resp, err := client.Login(args[0], args[1])
		if err != nil {
			return err
		}
		if !resp.Success {
			return fmt.Errorf("login rejected")
		}
		fmt.Printf("Logged in as %s (access: %s), session valid until %s\n",
			resp.User.Username,
			resp.User.Zugriff,
			time.Unix(resp.Expires, 0).Format(time.RFC1123),
		)
		return nil

	case "logout":
		if err := client.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil

	case "status":
		if client.IsLoggedIn() {
			user, err := sess.User()
			if err != nil {
				return err
			}
			if user != nil {
				fmt.Printf("Logged in as %s\n", user.Username)
				return nil
			}
		}
		fmt.Println("Not logged in")
		return nil

	case "employees":
		resp, err := client.Employees()
		if err != nil {
			return err
		}
		for _, e := range resp.Employees {
			fmt.Printf("%3d  %s, %s\n", e.ID, e.Surname, e.GivenName)
		}
		fmt.Printf("%d employees\n", resp.Count)
		return nil

	case "locations":
		resp, err := client.Locations()
		if err != nil {
			return err
		}
		for _, l := range resp.Locations {
			fmt.Printf("%3d  %s — %s\n", l.ID, l.Name, l.Address)
		}
		fmt.Printf("%d locations\n", resp.Count)
		return nil

	case "submit":
		return runSubmit(args, client)

	case "history":
		return runHistory(args, client)

	case "serve":
		return runServe(cfg, sess, records, log)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func runSubmit(args []string, client api.Client) error {
	fs := flag.NewFlagSet("submit", flag.ContinueOnError)
	employeeID := fs.Int("employee", 0, "Employee id")
	locationID := fs.Int("location", 0, "Location id")
	date := fs.String("date", time.Now().Format("2006-01-02"), "Shift date (YYYY-MM-DD)")
	start := fs.String("start", "", "Shift start (HH:MM)")
	end := fs.String("end", "", "Shift end (HH:MM)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *employeeID == 0 || *locationID == 0 || *start == "" || *end == "" {
		return fmt.Errorf("submit requires -employee, -location, -start and -end")
	}

	resp, err := client.SubmitHours(models.HoursData{
		EmployeeID: *employeeID,
		LocationID: *locationID,
		Date:       *date,
		ShiftStart: *start,
		ShiftEnd:   *end,
	})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("submission rejected")
	}
	fmt.Println("Hours recorded")
	return nil
}

func runHistory(args []string, client api.Client) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	start := fs.String("start", "", "Earliest date (YYYY-MM-DD), inclusive")
	end := fs.String("end", "", "Latest date (YYYY-MM-DD), inclusive")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := client.HoursHistory(*start, *end)
	if err != nil {
		return err
	}
	for _, r := range resp.Records {
		employee := "-"
		if r.EmployeeName != nil {
			employee = *r.EmployeeName
		}
		location := "-"
		if r.LocationName != nil {
			location = *r.LocationName
		}
		fmt.Printf("#%-5d %s  %s–%s  %-22s %s\n",
			r.ID, r.Date, r.ShiftStart, r.ShiftEnd, employee, location)
	}
	fmt.Printf("%d records\n", resp.Count)
	return nil
}

// runServe hosts the wire contract locally on top of the mock service so
// the real client has something to talk to during development.
func runServe(cfg *config.Config, sess *session.Manager, records *mockapi.RecordStore, log *logger.Logger) error {
	mock := mockapi.NewService(sess, records, false, log.Logger)
	handler := server.NewHoursHandler(mock, log.Logger)

	addr := fmt.Sprintf("localhost:%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.NewRouter(handler, log.Logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Demo backend listening", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Demo backend error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("Received shutdown signal", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Demo backend stopped")
	return nil
}
