package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"tilepuzzle/src"
	"tilepuzzle/src/calendar"
	"tilepuzzle/src/logx"
	clic "tilepuzzle/src/ui/cli"
	"tilepuzzle/src/ui/gui"
	"tilepuzzle/src/ui/gui/gbase"
	"tilepuzzle/src/ui/gui/gbase/gconf"
	"tilepuzzle/src/ui/web"
	"time"

	"github.com/urfave/cli/v3"
)

const (
	logfile string = "tilepuzzle.log"
	// terminal boards are laid out in container pixels of this size
	cliContainer int = 240
)

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func openLog() (*os.File, error) {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error open logfile: %v", err)
	}
	return file, nil
}

func RunGUI(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		return err
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync()
	g, err := gui.NewGUI(src.NewGameBuilder(logger), c.String("config"), logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %v", err)
	}
	return g.Run()
}

func RunCLI(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		return err
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync()

	img, err := clic.LoadImage(c.String("image"), cliContainer)
	if err != nil {
		return fmt.Errorf("error load image: %w", err)
	}
	gb := src.NewGameBuilder(logger)
	if c.IsSet("seed") {
		gb.SetSeed(c.Uint64("seed"))
	}
	gb.SetTimeLimit(c.Int("time"))
	if _, err := gb.StartGame(img, c.Int("grid"), float64(cliContainer)); err != nil {
		return err
	}
	clic.EnableANSI()
	return clic.NewCLI(gb, logger).Run()
}

func RunServer(ctx context.Context, c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		return err
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return web.NewServer(logger).ListenAndServe(ctx, c.String("addr"))
}

func PrintCalendar(c *cli.Command) error {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if c.IsSet("year") {
		year = c.Int("year")
	}
	if c.IsSet("month") {
		m := c.Int("month")
		if m < 1 || m > 12 {
			return fmt.Errorf("bad month %d", m)
		}
		month = time.Month(m)
	}

	events := calendar.SampleEvents(now)
	if path := c.String("events"); path != "" {
		var err error
		if events, err = calendar.LoadEvents(path); err != nil {
			return err
		}
	}
	clic.EnableANSI()
	clic.PrintMonth(os.Stdout, year, month, events, time.Local)
	return nil
}

func RunTilePuzzle() error {
	df := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "dev encode log",
	}
	lf := &cli.StringFlag{
		Name:        "level",
		Aliases:     []string{"l"},
		Usage:       "level log",
		DefaultText: "info",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console log",
	}
	conff := &cli.StringFlag{
		Name:  "config",
		Usage: "path to settings file",
		Value: gconf.DefaultFile,
	}
	imf := &cli.StringFlag{
		Name:    "image",
		Aliases: []string{"i"},
		Usage:   "path to puzzle image, built-in sample if empty",
	}
	gf := &cli.IntFlag{
		Name:    "grid",
		Aliases: []string{"g"},
		Usage:   "pieces per side (3-8)",
		Value:   4,
	}
	tf := &cli.IntFlag{
		Name:    "time",
		Aliases: []string{"t"},
		Usage:   "time limit in seconds, 0 disables it",
	}
	sf := &cli.Uint64Flag{
		Name:  "seed",
		Usage: "shuffle seed",
	}
	af := &cli.StringFlag{
		Name:  "addr",
		Usage: "listen address",
		Value: ":8080",
	}
	ef := &cli.StringFlag{
		Name:    "events",
		Aliases: []string{"e"},
		Usage:   "path to events JSON file, demo events if empty",
	}
	yf := &cli.IntFlag{
		Name:  "year",
		Usage: "calendar year",
	}
	mf := &cli.IntFlag{
		Name:  "month",
		Usage: "calendar month (1-12)",
	}
	logff := []cli.Flag{df, lf, cf}
	guiff := append([]cli.Flag{conff}, logff...)
	cliff := append([]cli.Flag{imf, gf, tf, sf}, logff...)
	serveff := append([]cli.Flag{af}, logff...)

	return (&cli.Command{
		Name:  "tilepuzzle",
		Usage: "image tile puzzle",
		Flags: guiff,
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "window with puzzle, memory game and calendar",
				Flags: guiff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunGUI(c); err != nil && !errors.Is(err, gbase.ErrExit) {
						fmt.Printf("error GUI: %v\n", err)
					}
					return nil
				},
			},
			{
				Name:  "cli",
				Usage: "puzzle in the terminal",
				Flags: cliff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunCLI(c); err != nil {
						fmt.Printf("error tilepuzzle: %v\n", err)
					}
					return nil
				},
			},
			{
				Name:  "serve",
				Usage: "JSON HTTP API",
				Flags: serveff,
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunServer(ctx, c)
				},
			},
			{
				Name:  "calendar",
				Usage: "print a month with its events",
				Flags: []cli.Flag{ef, yf, mf},
				Action: func(ctx context.Context, c *cli.Command) error {
					return PrintCalendar(c)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := RunGUI(c); err != nil && !errors.Is(err, gbase.ErrExit) {
				fmt.Printf("error GUI: %v\n", err)
			}
			return nil
		},
	}).Run(context.Background(), os.Args)
}
