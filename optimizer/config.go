package optimizer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/passivetree/scoring"
	"github.com/katalvlaran/passivetree/tree"
)

// ErrInvalidConfig indicates a Config that fails validation.
var ErrInvalidConfig = errors.New("optimizer: invalid build config")

// WeightTolerance is the allowed deviation of OffenseWeight + DefenseWeight
// from 1.
const WeightTolerance = 1e-6

// MaxRequiredKeystones caps Config.RequiredKeystones.
const MaxRequiredKeystones = 3

// Config is one build to optimise.
type Config struct {
	// Name labels the build in batch output; optional.
	Name string `json:"name,omitempty" yaml:"name"`

	// Class is a class or ascendancy name.
	Class string `json:"class" yaml:"class" validate:"required"`

	OffenseWeight float64 `json:"offenseWeight" yaml:"offense_weight" validate:"gte=0,lte=1"`
	DefenseWeight float64 `json:"defenseWeight" yaml:"defense_weight" validate:"gte=0,lte=1"`

	// PointBudget is the number of points to spend; the start node is free.
	PointBudget int `json:"pointBudget" yaml:"point_budget" validate:"gte=0"`

	RequiredKeystones []string `json:"requiredKeystones,omitempty" yaml:"required_keystones" validate:"max=3,dive,required"`
	SkillTags         []string `json:"skillTags,omitempty" yaml:"skill_tags" validate:"dive,required"`
	WeaponTags        []string `json:"weaponTags,omitempty" yaml:"weapon_tags" validate:"dive,required"`
}

// NewConfig returns a Config with DefenseWeight = 1 - offenseWeight.
func NewConfig(class string, offenseWeight float64, budget int) Config {
	return Config{
		Class:         class,
		OffenseWeight: offenseWeight,
		DefenseWeight: 1 - offenseWeight,
		PointBudget:   budget,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		c := sl.Current().Interface().(Config)
		if math.Abs(c.OffenseWeight+c.DefenseWeight-1) > WeightTolerance {
			sl.ReportError(c.DefenseWeight, "DefenseWeight", "DefenseWeight", "weightsum", "")
		}
	}, Config{})

	return v
}

// Validate checks field ranges and the weight sum. Failures wrap
// ErrInvalidConfig with one message per offending field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(fields))
	for _, fe := range fields {
		msgs = append(msgs, fieldMessage(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return field + " must be at least " + fe.Param()
	case "lte":
		return field + " must be at most " + fe.Param()
	case "max":
		return fmt.Sprintf("%s accepts at most %s entries", field, fe.Param())
	case "weightsum":
		return "OffenseWeight + DefenseWeight must equal 1"
	}

	return field + " is invalid"
}

// Build returns the scoring view of the config.
func (c Config) Build() scoring.Build {
	return scoring.Build{
		OffenseWeight: c.OffenseWeight,
		DefenseWeight: c.DefenseWeight,
		SkillTags:     c.SkillTags,
		WeaponTags:    c.WeaponTags,
	}
}

// Key is a canonical string for configs that produce identical results:
// the class is resolved, tags are normalised and the name is ignored.
// The order of required keystones is kept since it drives seeding.
func (c Config) Key() string {
	var b strings.Builder
	b.WriteString(tree.ClassFor(c.Class))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(c.OffenseWeight, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(c.DefenseWeight, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(c.PointBudget))
	b.WriteByte('|')
	b.WriteString(strings.Join(c.RequiredKeystones, ","))
	b.WriteByte('|')
	b.WriteString(strings.Join(tree.NormalizeTags(c.SkillTags), ","))
	b.WriteByte('|')
	b.WriteString(strings.Join(tree.NormalizeTags(c.WeaponTags), ","))

	return b.String()
}
