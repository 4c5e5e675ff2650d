package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/jimmydeci/FINE3300-2025-A2/internal/config"
	"github.com/jimmydeci/FINE3300-2025-A2/internal/logging"
	"github.com/jimmydeci/FINE3300-2025-A2/internal/mortgage"
	"github.com/jimmydeci/FINE3300-2025-A2/internal/report"
	"github.com/jimmydeci/FINE3300-2025-A2/pkg/constants"
	"github.com/jimmydeci/FINE3300-2025-A2/pkg/output"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
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

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := output.ValidateFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	params := mortgage.LoanParameters{
		Principal:         conf.Mortgage.Principal,
		QuotedRate:        conf.Mortgage.QuotedRate,
		AmortizationYears: conf.Mortgage.AmortizationYears,
	}

	engine := mortgage.NewEngine(logger)
	payments, err := engine.Payments(params)
	if err != nil {
		logger.Fatal("failed to compute payment quotes",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	schedules, err := engine.GenerateAll(params)
	if err != nil {
		logger.Fatal("failed to generate amortization schedules",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(payments, schedules, conf.Mortgage.TermYears)
	case constants.OutputFormatCSV:
		output.CsvFormat(schedules)
	}

	if conf.Mortgage.WorkbookPath != "" {
		if err := report.WriteScheduleWorkbook(conf.Mortgage.WorkbookPath, payments, schedules); err != nil {
			logger.Fatal("failed to write schedule workbook",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		logger.Info("wrote schedule workbook",
			zap.String("op", "main"),
			zap.String("path", conf.Mortgage.WorkbookPath),
		)
	}
}
