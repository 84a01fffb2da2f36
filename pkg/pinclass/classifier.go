package pinclass

import (
	"go.uber.org/zap"

	"github.com/OpenTraceLab/pinreport/pkg/report"
)

// Classifier applies a rule table to every record of a pin set.
type Classifier struct {
	rules  []Rule
	logger *zap.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithRules replaces the default rule table.
func WithRules(rules []Rule) Option {
	return func(c *Classifier) {
		c.rules = rules
	}
}

// NewClassifier creates a classifier that reports unknown pins to logger.
// A nil logger discards the notices.
func NewClassifier(logger *zap.Logger, opts ...Option) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Classifier{
		rules:  defaultRules,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Result holds the classified pins in report order.
type Result struct {
	Pins    []Pin
	Unknown []Pin // Pins whose function matched no rule
}

// Classify returns the category of a single pin function.
func (c *Classifier) Classify(pinFunc string) Category {
	return classify(c.rules, pinFunc)
}

// ClassifyAll categorizes every record. Unknown pins are kept in Pins,
// listed in Unknown and logged with their package pin and function.
func (c *Classifier) ClassifyAll(set *report.PinSet) *Result {
	records := set.Records()
	result := &Result{
		Pins: make([]Pin, 0, len(records)),
	}

	for _, rec := range records {
		pin := Pin{Record: rec, Category: c.Classify(rec.PinFunc)}
		if pin.Category == Unknown {
			c.logger.Warn("unknown pin type",
				zap.String("pin", rec.PackagePin),
				zap.String("pin_func", rec.PinFunc))
			result.Unknown = append(result.Unknown, pin)
		}
		result.Pins = append(result.Pins, pin)
	}

	c.logger.Debug("classified pins",
		zap.Int("pins", len(result.Pins)),
		zap.Int("unknown", len(result.Unknown)))
	return result
}
