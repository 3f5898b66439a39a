package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/storage"
	"github.com/aravind1338/eecs545-artificial-curiosity/pkg/curiosity"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "reset":
		return runReset(ctx, args[1:])
	case "run":
		return runRun(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "trajectory":
		return runTrajectory(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	case "motivations":
		return runMotivations(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: curiosityctl <init|reset|run|runs|trajectory|export|motivations> [flags]", msg)
}

func newClient(storeKind, dbPath, artifactsDir string, verbose bool) (*curiosity.Client, error) {
	var logger *zap.Logger
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
	}
	return curiosity.New(curiosity.Options{
		StoreKind:    storeKind,
		DBPath:       dbPath,
		ArtifactsDir: artifactsDir,
		Logger:       logger,
	})
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "curiosity.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(*storeKind, *dbPath, "", false)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Init(ctx); err != nil {
		return err
	}
	fmt.Printf("initialized store=%s\n", *storeKind)
	return nil
}

func runReset(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "curiosity.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(*storeKind, *dbPath, "", false)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Reset(ctx); err != nil {
		return err
	}
	fmt.Printf("reset store=%s\n", *storeKind)
	return nil
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "experiment config YAML path")
	mapPath := fs.String("map", "", "terrain image path (overrides config)")
	fov := fs.Int("fov", 0, "field of view edge length (overrides config)")
	grains := fs.Int("grains", 0, "grain count (overrides config)")
	iterations := fs.Int("iterations", 0, "steps per agent (overrides config)")
	seed := fs.Int64("seed", 0, "rng seed (overrides config)")
	outDir := fs.String("out", "", "artifact output directory (overrides config)")
	storeKind := fs.String("store", "", "store backend: memory|sqlite (overrides config)")
	dbPath := fs.String("db-path", "", "sqlite database path (overrides config)")
	quiet := fs.Bool("quiet", false, "suppress the progress bar")
	verbose := fs.Bool("verbose", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return fmt.Errorf("run requires -config")
	}

	expFile, err := loadExperimentFile(*configPath)
	if err != nil {
		return err
	}
	expFile.applyOverrides(fileOverrides{
		MapPath:    *mapPath,
		FOV:        *fov,
		GrainCount: *grains,
		Iterations: *iterations,
		Seed:       *seed,
		OutputDir:  *outDir,
		Store:      *storeKind,
		DBPath:     *dbPath,
	})
	req, err := expFile.toRunRequest()
	if err != nil {
		return err
	}
	if !*quiet {
		req.Progress = newProgressPrinter(os.Stdout)
	}

	client, err := newClient(expFile.Store, expFile.DBPath, expFile.OutputDir, *verbose)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summary, runErr := client.RunExperiment(ctx, req)
	if !*quiet {
		fmt.Println()
	}
	if summary.RunID != "" {
		fmt.Printf("run=%s iterations=%d\n", summary.RunID, summary.Iterations)
		for _, record := range summary.Agents {
			status := fmt.Sprintf("steps=%d", record.Steps)
			if record.Failed {
				status = fmt.Sprintf("failed at step %d: %s", record.FailStep, record.FailReason)
			}
			fmt.Printf("  %s %s\n", record.Label, status)
		}
		if summary.ArtifactsDir != "" {
			fmt.Printf("artifacts=%s\n", summary.ArtifactsDir)
		}
	}
	return runErr
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "curiosity.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(*storeKind, *dbPath, "", false)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	runs, err := client.Runs(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}
	for _, summary := range runs {
		fmt.Printf("%s created=%s map=%s fov=%d agents=%d iterations=%d\n",
			summary.RunID, summary.CreatedAtUTC, summary.MapSource,
			summary.FOV, len(summary.Agents), summary.Iterations)
	}
	return nil
}

func runTrajectory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("trajectory", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	agentID := fs.String("agent-id", "", "agent id")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "curiosity.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" || *agentID == "" {
		return fmt.Errorf("trajectory requires -run-id and -agent-id")
	}

	client, err := newClient(*storeKind, *dbPath, "", false)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	trajectory, err := client.Trajectory(ctx, *runID, *agentID)
	if err != nil {
		return err
	}
	for _, p := range trajectory.Points {
		fmt.Printf("%d,%d\n", p.X, p.Y)
	}
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	outDir := fs.String("out", "artifacts", "output directory")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "curiosity.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return fmt.Errorf("export requires -run-id")
	}

	client, err := newClient(*storeKind, *dbPath, *outDir, false)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	dir, err := client.Export(ctx, *runID, *outDir)
	if err != nil {
		return err
	}
	fmt.Printf("exported run=%s dir=%s\n", *runID, dir)
	return nil
}

func runMotivations(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("motivations", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient("memory", "", "", false)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	fmt.Println(strings.Join(client.Motivations(), "\n"))
	return nil
}
