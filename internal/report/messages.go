package report

import (
	"fmt"
	"strings"

	"fjacquet/card-payoff/internal/fileutils"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// MessageCode identifies a user-facing string in the catalog. Engine results
// only carry language-neutral codes; text is resolved here.
type MessageCode string

// Operation titles.
const (
	TitleSchedule  MessageCode = "title.schedule"
	TitleMinimum   MessageCode = "title.minimum"
	TitleSolve     MessageCode = "title.solve"
	TitleCompare   MessageCode = "title.compare"
	TitleRecommend MessageCode = "title.recommend"
	TitleGrowth    MessageCode = "title.growth"
	TitleRank      MessageCode = "title.rank"
	TitleSavings   MessageCode = "title.savings"
)

// Summary labels.
const (
	LabelCard            MessageCode = "label.card"
	LabelBalance         MessageCode = "label.balance"
	LabelAnnualRate      MessageCode = "label.annual_rate"
	LabelMinimumRate     MessageCode = "label.minimum_rate"
	LabelPayment         MessageCode = "label.payment"
	LabelTotalPayments   MessageCode = "label.total_payments"
	LabelTotalPaid       MessageCode = "label.total_paid"
	LabelTotalInterest   MessageCode = "label.total_interest"
	LabelPayoffDate      MessageCode = "label.payoff_date"
	LabelMinimumPayment  MessageCode = "label.minimum_payment"
	LabelMonthlyInterest MessageCode = "label.monthly_interest"
	LabelDailyInterest   MessageCode = "label.daily_interest"
	LabelUtilization     MessageCode = "label.utilization"
	LabelAvailableCredit MessageCode = "label.available_credit"
	LabelTargetMonths    MessageCode = "label.target_months"
	LabelMonths          MessageCode = "label.months"
	LabelExtraPayment    MessageCode = "label.extra_payment"
	LabelInterestSaved   MessageCode = "label.interest_saved"
	LabelMonthsSaved     MessageCode = "label.months_saved"
	LabelPercentSaved    MessageCode = "label.percentage_saved"
	LabelMinimumPlan     MessageCode = "label.minimum_plan"
	LabelAcceleratedPlan MessageCode = "label.accelerated_plan"
)

// Notes attached to results.
const (
	NoteInsufficientPayment MessageCode = "note.insufficient_payment"
	NoteNoSolution          MessageCode = "note.no_solution"
	NoteTargetNotReached    MessageCode = "note.target_not_reached"
	NoteTruncated           MessageCode = "note.truncated"
	NoteSavingsUnavailable  MessageCode = "note.savings_unavailable"
	NoteNoRecommendations   MessageCode = "note.no_recommendations"
	NoteZeroBalance         MessageCode = "note.zero_balance"
)

const (
	columnPrefix   = "column."
	kindPrefix     = "kind."
	priorityPrefix = "priority."
	strategyPrefix = "strategy."
	outcomePrefix  = "outcome."
)

// Localizer resolves message codes to text in one language.
type Localizer interface {
	Language() string
	Message(code MessageCode, args ...interface{}) string
}

// Catalog maps language to message code to format string. It is the
// on-disk shape of message overrides and the source of the built-in texts.
type Catalog map[string]map[MessageCode]string

var builtinCatalog = Catalog{
	"en": {
		TitleSchedule:  "Payment schedule",
		TitleMinimum:   "Minimum payment",
		TitleSolve:     "Payment for target payoff",
		TitleCompare:   "Payment scenarios",
		TitleRecommend: "Payment recommendations",
		TitleGrowth:    "Debt growth without payments",
		TitleRank:      "Debt payoff order",
		TitleSavings:   "Interest savings",

		LabelCard:            "Card",
		LabelBalance:         "Balance",
		LabelAnnualRate:      "Annual interest rate",
		LabelMinimumRate:     "Minimum payment rate",
		LabelPayment:         "Monthly payment",
		LabelTotalPayments:   "Number of payments",
		LabelTotalPaid:       "Total paid",
		LabelTotalInterest:   "Total interest",
		LabelPayoffDate:      "Payoff date",
		LabelMinimumPayment:  "Minimum payment",
		LabelMonthlyInterest: "Monthly interest",
		LabelDailyInterest:   "Daily interest",
		LabelUtilization:     "Credit utilization",
		LabelAvailableCredit: "Available credit",
		LabelTargetMonths:    "Target months",
		LabelMonths:          "Months to pay off",
		LabelExtraPayment:    "Extra payment",
		LabelInterestSaved:   "Interest saved",
		LabelMonthsSaved:     "Months saved",
		LabelPercentSaved:    "Share of interest saved",
		LabelMinimumPlan:     "Minimum only",
		LabelAcceleratedPlan: "With extra payment",

		NoteInsufficientPayment: "A payment of %s does not cover the monthly interest; the debt would grow. Pay at least %s.",
		NoteNoSolution:          "There is no balance to pay off.",
		NoteTargetNotReached:    "A payment of %s does not clear the balance within %d months.",
		NoteTruncated:           "The schedule stops after %d months with %s still owed.",
		NoteSavingsUnavailable:  "Interest savings cannot be computed for this card.",
		NoteNoRecommendations:   "No payment plan applies to this card.",
		NoteZeroBalance:         "The balance is already paid off.",

		"column.month":                  "Month",
		"column.payment":                "Payment",
		"column.interest":               "Interest",
		"column.principal":              "Principal",
		"column.remaining_balance":      "Remaining",
		"column.balance":                "Balance",
		"column.interest_added":         "Interest added",
		"column.total_interest_accrued": "Total interest",
		"column.strategy":               "Strategy",
		"column.position":               "#",
		"column.id":                     "ID",
		"column.label":                  "Card",
		"column.annual_rate":            "Rate %%",
		"column.priority":               "Priority",
		"column.kind":                   "Plan",
		"column.outcome":                "Outcome",
		"column.months":                 "Months",
		"column.total_paid":             "Total paid",
		"column.total_interest":         "Total interest",
		"column.payoff_date":            "Payoff date",
		"column.minimum_required":       "Minimum required",
		"column.field":                  "Field",
		"column.value":                  "Value",

		"kind.minimum":          "Minimum payment",
		"kind.double_minimum":   "2x minimum payment",
		"kind.target_12_months": "Pay off in 12 months",
		"kind.target_6_months":  "Pay off in 6 months",

		"priority.highest_rate":   "Highest interest rate",
		"priority.lowest_balance": "Lowest balance",

		"strategy.avalanche": "Avalanche",
		"strategy.snowball":  "Snowball",

		"outcome.success":              "Paid off",
		"outcome.insufficient_payment": "Insufficient payment",
	},
	"tr": {
		TitleSchedule:  "Ödeme planı",
		TitleMinimum:   "Minimum ödeme",
		TitleSolve:     "Hedef süre için ödeme",
		TitleCompare:   "Ödeme senaryoları",
		TitleRecommend: "Ödeme önerileri",
		TitleGrowth:    "Ödeme yapılmazsa borç artışı",
		TitleRank:      "Borç kapatma sırası",
		TitleSavings:   "Faiz tasarrufu",

		LabelCard:            "Kart",
		LabelBalance:         "Bakiye",
		LabelAnnualRate:      "Yıllık faiz oranı",
		LabelMinimumRate:     "Minimum ödeme oranı",
		LabelPayment:         "Aylık ödeme",
		LabelTotalPayments:   "Ödeme sayısı",
		LabelTotalPaid:       "Toplam ödenen",
		LabelTotalInterest:   "Toplam faiz",
		LabelPayoffDate:      "Borcun biteceği tarih",
		LabelMinimumPayment:  "Minimum ödeme",
		LabelMonthlyInterest: "Aylık faiz",
		LabelDailyInterest:   "Günlük faiz",
		LabelUtilization:     "Limit kullanım oranı",
		LabelAvailableCredit: "Kullanılabilir limit",
		LabelTargetMonths:    "Hedef ay",
		LabelMonths:          "Kapatma süresi (ay)",
		LabelExtraPayment:    "Ek ödeme",
		LabelInterestSaved:   "Tasarruf edilen faiz",
		LabelMonthsSaved:     "Kazanılan ay",
		LabelPercentSaved:    "Faiz tasarruf oranı",
		LabelMinimumPlan:     "Sadece minimum ödeme",
		LabelAcceleratedPlan: "Ek ödeme ile",

		NoteInsufficientPayment: "%s tutarındaki ödeme aylık faizden düşük, borç artacak. En az %s ödeyin.",
		NoteNoSolution:          "Kapatılacak bakiye yok.",
		NoteTargetNotReached:    "%s tutarındaki ödeme bakiyeyi %d ayda kapatmıyor.",
		NoteTruncated:           "Ödeme planı %d ay sonra %s borç kalmışken duruyor.",
		NoteSavingsUnavailable:  "Bu kart için faiz tasarrufu hesaplanamıyor.",
		NoteNoRecommendations:   "Bu kart için uygun bir ödeme planı yok.",
		NoteZeroBalance:         "Bakiye zaten kapatılmış.",

		"column.month":                  "Ay",
		"column.payment":                "Ödeme",
		"column.interest":               "Faiz",
		"column.principal":              "Anapara",
		"column.remaining_balance":      "Kalan borç",
		"column.balance":                "Bakiye",
		"column.interest_added":         "Eklenen faiz",
		"column.total_interest_accrued": "Toplam faiz",
		"column.strategy":               "Strateji",
		"column.position":               "#",
		"column.id":                     "ID",
		"column.label":                  "Kart",
		"column.annual_rate":            "Faiz %%",
		"column.priority":               "Öncelik",
		"column.kind":                   "Plan",
		"column.outcome":                "Sonuç",
		"column.months":                 "Ay",
		"column.total_paid":             "Toplam ödenen",
		"column.total_interest":         "Toplam faiz",
		"column.payoff_date":            "Bitiş tarihi",
		"column.minimum_required":       "Gereken en az ödeme",
		"column.field":                  "Alan",
		"column.value":                  "Değer",

		"kind.minimum":          "Minimum Ödeme",
		"kind.double_minimum":   "2x Minimum Ödeme",
		"kind.target_12_months": "12 Ayda Bitir",
		"kind.target_6_months":  "6 Ayda Bitir",

		"priority.highest_rate":   "En yüksek faiz oranı",
		"priority.lowest_balance": "En düşük bakiye",

		"strategy.avalanche": "Çığ yöntemi",
		"strategy.snowball":  "Kartopu yöntemi",

		"outcome.success":              "Kapatıldı",
		"outcome.insufficient_payment": "Yetersiz ödeme",
	},
}

// catalogLocalizer prints messages through an x/text printer for one
// language.
type catalogLocalizer struct {
	language string
	printer  *message.Printer
}

// NewLocalizer returns a Localizer for lang. When overridesFile is set it is
// read as YAML of the form {lang: {code: text}} and layered over the
// built-in catalog. A code missing in lang falls back to its English text,
// then to the code itself.
func NewLocalizer(lang, overridesFile string) (Localizer, error) {
	lang = strings.ToLower(lang)
	if _, ok := builtinCatalog[lang]; !ok {
		return nil, fmt.Errorf("no message catalog for language '%s'", lang)
	}

	layers := []Catalog{builtinCatalog}
	if overridesFile != "" {
		overrides, err := LoadCatalog(overridesFile)
		if err != nil {
			return nil, err
		}
		layers = append(layers, overrides)
	}

	tag := language.Make(lang)
	builder, err := buildCatalog(tag, layers...)
	if err != nil {
		return nil, err
	}

	return &catalogLocalizer{
		language: lang,
		printer:  message.NewPrinter(tag, message.Catalog(builder)),
	}, nil
}

// buildCatalog registers every layer in order, later layers overriding
// earlier ones, and copies English texts the target language lacks.
func buildCatalog(target language.Tag, layers ...Catalog) (*catalog.Builder, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	english := make(map[string]string)
	defined := make(map[string]bool)

	for _, layer := range layers {
		for lang, messages := range layer {
			tag, err := language.Parse(lang)
			if err != nil {
				return nil, fmt.Errorf("invalid language '%s' in message catalog: %w", lang, err)
			}
			for code, text := range messages {
				if err := builder.SetString(tag, string(code), text); err != nil {
					return nil, fmt.Errorf("invalid message %s: %w", code, err)
				}
				if tag.String() == language.English.String() {
					english[string(code)] = text
				}
				if tag.String() == target.String() {
					defined[string(code)] = true
				}
			}
		}
	}

	for code, text := range english {
		if defined[code] {
			continue
		}
		if err := builder.SetString(target, code, text); err != nil {
			return nil, fmt.Errorf("invalid message %s: %w", code, err)
		}
	}

	return builder, nil
}

// LoadCatalog reads message overrides from a YAML file. Texts are format
// strings: a literal percent sign is written "%%".
func LoadCatalog(path string) (Catalog, error) {
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading message catalog: %w", err)
	}

	var overrides Catalog
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("error parsing message catalog %s: %w", path, err)
	}
	return overrides, nil
}

func (l *catalogLocalizer) Language() string {
	return l.language
}

func (l *catalogLocalizer) Message(code MessageCode, args ...interface{}) string {
	return l.printer.Sprintf(string(code), args...)
}

func enumCode(prefix string, value string) MessageCode {
	return MessageCode(prefix + value)
}
