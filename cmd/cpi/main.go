package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jimmydeci/FINE3300-2025-A2/internal/config"
	"github.com/jimmydeci/FINE3300-2025-A2/internal/cpi"
	"github.com/jimmydeci/FINE3300-2025-A2/internal/logging"
	"github.com/jimmydeci/FINE3300-2025-A2/internal/report"
	"github.com/jimmydeci/FINE3300-2025-A2/pkg/constants"
	"github.com/jimmydeci/FINE3300-2025-A2/pkg/format"
)

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	dataDirFlag := flag.String("data-dir", "", "CPI data directory override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := logging.Initialize(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	dataDir := conf.CPI.DataDir
	if *dataDirFlag != "" {
		dataDir = *dataDirFlag
	}
	if dataDir == "" {
		logger.Fatal("no CPI data directory configured",
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	loader := cpi.NewLoader(logger)
	table, err := loader.LoadAll(dataDir)
	if err != nil {
		logger.Fatal("failed to load CPI data",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	wages, err := loader.LoadMinimumWages(dataDir)
	if err != nil {
		logger.Fatal("failed to load minimum wages",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	table.SortForDisplay()
	preview := table.Head(constants.PreviewRows)
	fmt.Printf("First %d rows of combined CPI data:\n", constants.PreviewRows)
	fmt.Printf("%-40s %-8s %-26s %8s\n", "Item", "Month", "Jurisdiction", "CPI")
	for _, row := range preview {
		fmt.Printf("%-40s %-8s %-26s %8.1f\n", row.Item, row.Month, row.Jurisdiction, row.Value)
	}

	changes := cpi.AverageChangeTable(table)
	fmt.Printf("\nAverage month-to-month change (%%), Food / Shelter / All-items excluding food and energy:\n")
	for _, c := range changes {
		fmt.Printf("%-26s %-40s %6s\n", c.Jurisdiction, c.Item, format.Percent(c.Change))
	}

	if best, ok := cpi.HighestAverageChange(changes); ok {
		fmt.Printf("\nProvince with highest overall average change: %s (%s)\n",
			best.Jurisdiction, format.Percent(best.Average))
	}

	salaries, err := cpi.EquivalentSalaries(table, conf.CPI.BaseJurisdiction, conf.CPI.BaseSalary)
	if err != nil {
		logger.Fatal("failed to compute equivalent salaries",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	p := message.NewPrinter(language.English)
	_, _ = p.Printf("\nEquivalent salary to $%.2f in %s (December All-items CPI):\n",
		conf.CPI.BaseSalary, conf.CPI.BaseJurisdiction)
	for _, s := range salaries {
		_, _ = p.Printf("%-26s $%.2f\n", s.Jurisdiction, s.Salary)
	}

	highest, lowest := cpi.NominalWageExtremes(wages)
	fmt.Printf("\nHighest nominal minimum wage: %s - %s\n", highest.Jurisdiction, format.Currency(highest.Wage))
	fmt.Printf("Lowest nominal minimum wage: %s - %s\n", lowest.Jurisdiction, format.Currency(lowest.Wage))

	ranking, err := cpi.RealWageRanking(wages, table)
	if err != nil {
		logger.Fatal("failed to compute real wage ranking",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	fmt.Printf("\nMinimum wages ranked by CPI-adjusted purchasing power:\n")
	for _, r := range ranking {
		fmt.Printf("%-26s %8s %8.1f %8.4f\n", r.Jurisdiction, format.Currency(r.Wage), r.CPI, r.Real)
	}
	if len(ranking) > 0 {
		fmt.Printf("Province with highest real minimum wage: %s\n", ranking[0].Jurisdiction)
	}

	services := cpi.ServicesAnnualChange(table)
	fmt.Printf("\nAnnual change in Services CPI (January to December):\n")
	for _, s := range services {
		fmt.Printf("%-26s %6s\n", s.Jurisdiction, format.Percent(s.Change))
	}
	if best, ok := cpi.HighestServicesInflation(services); ok {
		fmt.Printf("Region with highest Services inflation: %s (%s)\n",
			best.Jurisdiction, format.Percent(best.Change))
	}

	if conf.CPI.WorkbookPath != "" {
		overall := cpi.OverallAverages(changes)
		err := report.WriteCPIWorkbook(conf.CPI.WorkbookPath, table, preview, changes, overall, salaries, ranking, services)
		if err != nil {
			logger.Fatal("failed to write CPI workbook",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		logger.Info("wrote CPI workbook",
			zap.String("op", "main"),
			zap.String("path", conf.CPI.WorkbookPath),
		)
	}
}
