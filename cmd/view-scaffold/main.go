package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jonboulle/clockwork"

	"view-scaffold/internal/cache"
	"view-scaffold/internal/config"
	"view-scaffold/internal/engine"
	"view-scaffold/internal/logger"
	"view-scaffold/internal/model"
	"view-scaffold/internal/report"
	"view-scaffold/internal/scaffold"
	"view-scaffold/internal/ui"
)

const (
	appName    = "View Scaffold"
	appVersion = "1.0.0"
	appDesc    = "A Pure Go view scaffolder for ASP.NET MVC model classes"
)

var (
	configPath  string
	verbose     bool
	showVersion bool
	typeName    string
	scaffoldAll bool
	views       string
	formats     string
	outputDir   string
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&typeName, "type", "", "Fully qualified model type to scaffold (e.g. MyShop.Models.Product)")
	flag.BoolVar(&scaffoldAll, "all", false, "Scaffold views for every model class under the project root")
	flag.StringVar(&views, "views", "", "Comma-separated view kinds, overrides config (create,edit,details,delete,index)")
	flag.StringVar(&formats, "report", "excel,word,json", "Comma-separated inventory report formats (excel,word,json)")
	flag.StringVar(&outputDir, "output", "", "Override views output directory from config")
}

func main() {
	// CRITICAL: Ensure "Press Enter to Exit" runs even on panic or error
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
		}
		waitForEnter()
	}()

	// Run the actual application logic
	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	printBanner()

	// 1. Initialize
	logger.Info("Loading configuration...")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	if outputDir != "" {
		cfg.Output.ViewsDir = outputDir
	}
	if views != "" {
		cfg.Scaffold.Views = strings.Split(views, ",")
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		return 1
	}
	if err := cfg.EnsureOutputDirs(); err != nil {
		fmt.Printf("❌ Failed to prepare output directories: %v\n", err)
		return 1
	}

	logPath := cfg.GetReportPath("log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if typeName == "" && !scaffoldAll {
		fmt.Println("❌ Nothing to do: pass -type <FullyQualifiedName> or -all")
		flag.Usage()
		return 1
	}

	if err := runScaffold(cfg); err != nil {
		logger.Error("Scaffolding failed: %v", err)
		return 1
	}

	logger.Info("✅ Scaffolding Complete. Views in [%s], reports in [%s].", cfg.Output.ViewsDir, cfg.Output.ReportDir)
	return 0
}

// waitForEnter pauses execution and waits for user to press Enter
// This prevents the console window from closing immediately when double-clicked
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func runScaffold(cfg *config.Config) error {
	extractionCache, err := cache.New(cfg.Cache.MaxEntries, cfg.CacheTTL(), cfg.CacheSweepInterval(), clockwork.NewRealClock())
	if err != nil {
		return err
	}
	defer extractionCache.Close()

	eng := engine.New(cfg, extractionCache)

	pipeline := ui.NewPipeline([]ui.Phase{
		ui.PhaseScanning,
		ui.PhaseGenerating,
		ui.PhaseReporting,
	})

	// --- Phase 1: Scanning & Extracting ---
	logger.Info("Phase 1: Scanning model sources...")
	scanBar := pipeline.NextPhase(100)

	var classes []*model.ModelClass
	inv := model.NewInventory()

	if scaffoldAll {
		builtInv, err := eng.BuildInventory(cfg.Project.RootDir, func() { scanBar.Increment() })
		if err != nil {
			return err
		}
		inv = builtInv
		classes = inv.Classes
	} else {
		mc, err := eng.ExtractClass(typeName, cfg.Project.RootDir)
		if err != nil {
			return err
		}
		if mc == nil || len(mc.Properties) == 0 {
			logger.Warn("No properties recovered for %s; views will render without model fields", typeName)
		}
		if mc != nil {
			classes = append(classes, mc)
			inv.Add(mc)
		}
		scanBar.Increment()
	}
	scanBar.Finish()
	logger.Info("Recovered %d classes, %d properties", inv.TotalClasses, inv.TotalProperties)

	// --- Phase 2: Generating Views ---
	logger.Info("Phase 2: Generating views...")
	generators := scaffold.GetGenerators(cfg.Scaffold.Views)
	genBar := pipeline.NextPhase(len(classes) * len(generators))

	var genErrors []error
	for _, mc := range classes {
		for _, gen := range generators {
			if err := gen.Generate(mc, cfg); err != nil {
				logger.Error("Failed to generate %s view for %s: %v", gen.Kind(), mc.ClassName, err)
				genErrors = append(genErrors, err)
			}
			genBar.Increment()
		}
	}
	genBar.Finish()

	// --- Phase 3: Inventory Reports ---
	logger.Info("Phase 3: Generating inventory reports...")
	targetFormats := strings.Split(formats, ",")
	reporters := report.GetReporters(targetFormats)

	repBar := pipeline.NextPhase(len(reporters))

	var reportErrors []error
	for _, rep := range reporters {
		if err := rep.Export(inv, cfg); err != nil {
			logger.Error("Report failed: %v", err)
			reportErrors = append(reportErrors, err)
		}
		repBar.Increment()
	}
	repBar.Finish()

	pipeline.Finish()

	if len(genErrors) > 0 || len(reportErrors) > 0 {
		return fmt.Errorf("one or more outputs failed: %d view errors, %d report errors", len(genErrors), len(reportErrors))
	}

	return nil
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                    VIEW SCAFFOLD v1.0.0                   ║
║         Razor View Generation for MVC Model Classes       ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
