// Package store loads card portfolios from YAML or CSV files.
package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/card-payoff/internal/calcerror"
	"fjacquet/card-payoff/internal/currencyutils"
	"fjacquet/card-payoff/internal/dateutils"
	"fjacquet/card-payoff/internal/fileutils"
	"fjacquet/card-payoff/internal/logging"
	"fjacquet/card-payoff/internal/models"
	"fjacquet/card-payoff/internal/validation"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// CardSource is what commands need from a portfolio.
type CardSource interface {
	LoadCards() ([]models.CreditCardSnapshot, error)
	FindCard(id string) (models.CreditCardSnapshot, error)
}

// cardRecord is the on-disk shape of one card. Numbers are kept as strings so
// that user formats like "1'200.50" or "24%" survive until currencyutils
// parses them.
type cardRecord struct {
	ID          string `yaml:"id" csv:"id"`
	Label       string `yaml:"label" csv:"label"`
	Balance     string `yaml:"balance" csv:"balance"`
	AnnualRate  string `yaml:"annual_rate" csv:"annual_rate"`
	MinimumRate string `yaml:"minimum_rate" csv:"minimum_rate"`
	CreditLimit string `yaml:"credit_limit" csv:"credit_limit"`
	AsOf        string `yaml:"as_of" csv:"as_of"`
}

// portfolioFile is the YAML layout with a top-level "cards" key.
type portfolioFile struct {
	Cards []cardRecord `yaml:"cards"`
}

// CardStore loads card snapshots from a portfolio file.
type CardStore struct {
	File      string
	Delimiter rune
	logger    logging.Logger
}

// NewCardStore creates a store for the given portfolio file. A zero
// delimiter means ','.
func NewCardStore(file string, delimiter rune, logger logging.Logger) *CardStore {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CardStore{
		File:      file,
		Delimiter: delimiter,
		logger:    logger,
	}
}

// FindConfigFile looks for a portfolio file in standard locations: the path
// itself, ./cards/, then ~/.card-payoff/.
func (s *CardStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("cards", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".card-payoff", filename))
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCards reads every card in the portfolio. The format follows the file
// extension: .yaml/.yml or .csv.
func (s *CardStore) LoadCards() ([]models.CreditCardSnapshot, error) {
	if s.File == "" {
		return nil, fmt.Errorf("no card portfolio file configured")
	}

	filePath, err := s.FindConfigFile(s.File)
	if err != nil {
		return nil, fmt.Errorf("error resolving card portfolio %s: %w", s.File, err)
	}

	if mode, err := fileutils.FilePermissions(filePath); err == nil {
		if err := validation.IsValidFilePermissions(mode); err != nil {
			s.logger.Warn("Card portfolio is readable by other users",
				logging.Field{Key: logging.FieldFile, Value: filePath},
				logging.Field{Key: logging.FieldError, Value: err.Error()})
		}
	}

	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading card portfolio: %w", err)
	}

	var records []cardRecord
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		records, err = decodeYAML(filePath, data)
	case ".csv":
		records, err = s.decodeCSV(filePath, data)
	default:
		err = &calcerror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: ".yaml, .yml or .csv file",
			Msg:            "unsupported file extension",
		}
	}
	if err != nil {
		return nil, err
	}

	cards, err := toSnapshots(filePath, records)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Loaded card portfolio",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(cards)})
	return cards, nil
}

// FindCard returns the card with the given ID.
func (s *CardStore) FindCard(id string) (models.CreditCardSnapshot, error) {
	cards, err := s.LoadCards()
	if err != nil {
		return models.CreditCardSnapshot{}, err
	}
	for _, card := range cards {
		if card.ID == id {
			return card, nil
		}
	}
	return models.CreditCardSnapshot{}, &calcerror.CardNotFoundError{FilePath: s.File, CardID: id}
}

func decodeYAML(filePath string, data []byte) ([]cardRecord, error) {
	var portfolio portfolioFile
	if err := yaml.Unmarshal(data, &portfolio); err == nil {
		return portfolio.Cards, nil
	}

	// Fallback: a bare list of cards without the top-level key
	var records []cardRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, &calcerror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: "YAML list of cards, optionally under a 'cards' key",
			Msg:            "cannot decode YAML",
			Err:            err,
		}
	}
	return records, nil
}

func (s *CardStore) decodeCSV(filePath string, data []byte) ([]cardRecord, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = s.Delimiter
	reader.TrimLeadingSpace = true

	var records []cardRecord
	if err := gocsv.UnmarshalCSV(reader, &records); err != nil {
		return nil, &calcerror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: fmt.Sprintf("CSV with header id%cbalance%cannual_rate%cminimum_rate", s.Delimiter, s.Delimiter, s.Delimiter),
			Msg:            "cannot decode CSV",
			Err:            err,
		}
	}
	return records, nil
}

func toSnapshots(filePath string, records []cardRecord) ([]models.CreditCardSnapshot, error) {
	cards := make([]models.CreditCardSnapshot, 0, len(records))
	seen := make(map[string]bool, len(records))

	for i, record := range records {
		card, err := record.toSnapshot()
		if err != nil {
			return nil, &calcerror.InvalidFormatError{
				FilePath:       filePath,
				ExpectedFormat: "numeric balance, annual_rate and minimum_rate",
				Msg:            fmt.Sprintf("card %d", i+1),
				Err:            err,
			}
		}
		if card.ID == "" {
			card.ID = fmt.Sprintf("card-%d", i+1)
		}
		if seen[card.ID] {
			return nil, &calcerror.InvalidFormatError{
				FilePath:       filePath,
				ExpectedFormat: "unique card ids",
				Msg:            fmt.Sprintf("duplicate card id '%s'", card.ID),
			}
		}
		seen[card.ID] = true
		cards = append(cards, card)
	}

	return cards, nil
}

func (r cardRecord) toSnapshot() (models.CreditCardSnapshot, error) {
	balance, err := currencyutils.ParseAmount(r.Balance)
	if err != nil {
		return models.CreditCardSnapshot{}, fmt.Errorf("balance: %w", err)
	}
	annual, err := currencyutils.ParsePercent(r.AnnualRate)
	if err != nil {
		return models.CreditCardSnapshot{}, fmt.Errorf("annual_rate: %w", err)
	}
	minimum, err := currencyutils.ParsePercent(r.MinimumRate)
	if err != nil {
		return models.CreditCardSnapshot{}, fmt.Errorf("minimum_rate: %w", err)
	}
	limit, err := currencyutils.ParseAmount(r.CreditLimit)
	if err != nil {
		return models.CreditCardSnapshot{}, fmt.Errorf("credit_limit: %w", err)
	}

	card := models.NewCreditCardSnapshot(balance, annual, minimum)
	card.ID = strings.TrimSpace(r.ID)
	card.Label = strings.TrimSpace(r.Label)
	card.CreditLimit = limit

	if strings.TrimSpace(r.AsOf) != "" {
		asOf, _, err := dateutils.ParseDate(r.AsOf)
		if err != nil {
			return models.CreditCardSnapshot{}, fmt.Errorf("as_of: %w", err)
		}
		card.AsOf = asOf
	}

	return card, nil
}
