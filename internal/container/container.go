// Package container provides dependency injection for the co-early-votes
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/co-early-votes/internal/config"
	"fjacquet/co-early-votes/internal/logging"
	"fjacquet/co-early-votes/internal/parser"
	"fjacquet/co-early-votes/internal/pdfparser"
	"fjacquet/co-early-votes/internal/votesparser"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; its fields are only reachable
// through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	extractor pdfparser.TableExtractor
	parser    parser.FullParser
}

// NewContainer creates and wires all application dependencies from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger is NewContainer with an externally built logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	extractor := pdfparser.NewLayoutExtractor(logger, cfg.PDF.RowTolerance)
	votesParser := votesparser.NewAdapter(logger, extractor, votesparser.Options{
		Delimiter:       cfg.Delimiter(),
		CheckGrandTotal: cfg.Validation.CheckGrandTotal,
		CheckRecords:    cfg.Validation.CheckRecords,
		WriteXLSX:       cfg.Output.XLSX,
	})

	logger.Debug("Container initialized successfully",
		logging.F("row_tolerance", cfg.PDF.RowTolerance),
		logging.F("check_grand_total", cfg.Validation.CheckGrandTotal),
		logging.F("xlsx", cfg.Output.XLSX))

	return &Container{
		logger:    logger,
		config:    cfg,
		extractor: extractor,
		parser:    votesParser,
	}, nil
}

// GetParser returns the ballots-returned report parser.
func (c *Container) GetParser() parser.FullParser {
	return c.parser
}

// GetExtractor returns the PDF table extractor used by the parser.
func (c *Container) GetExtractor() pdfparser.TableExtractor {
	return c.extractor
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}
