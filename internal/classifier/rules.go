package classifier

import (
	"fmt"
	"os"

	"flexicoach/fincoach/internal/models"

	"gopkg.in/yaml.v3"
)

// Rule maps a keyword set to a (category, need-vs-want) result. Rules are
// evaluated in order and the first matching keyword wins, so more specific
// rules must come before more general ones.
type Rule struct {
	Category string   `yaml:"category"`
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// DefaultRules returns the built-in rule table. The ordering encodes the
// resolution policy: housing before groceries, groceries before eating out,
// transport before bills (both claim "gas").
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: models.CategoryRent,
			Label:    models.LabelNeed,
			Keywords: []string{"rent", "lease", "emi", "loan", "mortgage", "housing"},
		},
		{
			Category: models.CategoryFood,
			Label:    models.LabelNeed,
			Keywords: []string{
				"grocery", "supermarket", "kirana", "vegetable", "fruit",
				"dmart", "reliance fresh", "big bazaar",
			},
		},
		{
			Category: models.CategoryFood,
			Label:    models.LabelWant,
			Keywords: []string{
				"zomato", "swiggy", "restaurant", "cafe", "coffee", "pizza",
				"burger", "domino", "mcdonald", "kfc", "food delivery",
			},
		},
		{
			Category: models.CategoryTransport,
			Label:    models.LabelNeed,
			Keywords: []string{
				"uber", "ola", "bus", "train", "metro", "fuel", "petrol",
				"diesel", "gas", "rapido", "auto",
			},
		},
		{
			Category: models.CategoryBills,
			Label:    models.LabelNeed,
			Keywords: []string{
				"electricity", "water", "wifi", "internet", "phone", "mobile",
				"recharge", "cylinder", "utility", "bill payment",
			},
		},
		{
			Category: models.CategoryHealth,
			Label:    models.LabelNeed,
			Keywords: []string{
				"medical", "hospital", "doctor", "pharmacy", "medicine",
				"health", "insurance", "apollo", "medicare",
			},
		},
		{
			Category: models.CategoryEntertainment,
			Label:    models.LabelWant,
			Keywords: []string{
				"netflix", "spotify", "amazon prime", "hotstar", "movie",
				"cinema", "theatre", "pvr", "inox", "gaming", "game",
			},
		},
		{
			Category: models.CategoryShopping,
			Label:    models.LabelWant,
			Keywords: []string{
				"amazon", "flipkart", "myntra", "ajio", "shopping", "mall",
				"store", "fashion", "clothing", "shoes",
			},
		},
		{
			Category: models.CategoryEducation,
			Label:    models.LabelNeed,
			Keywords: []string{
				"education", "school", "college", "university", "course",
				"tuition", "book", "study",
			},
		},
	}
}

type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads a rule table from a YAML file, replacing the built-in
// defaults.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}

	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("rules file %s contains no rules", path)
	}

	for i, rule := range file.Rules {
		if rule.Category == "" || len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("rule %d is missing a category or keywords", i)
		}
		switch rule.Label {
		case models.LabelNeed, models.LabelWant, models.LabelIncome:
		default:
			return nil, fmt.Errorf("rule %d has invalid label %q", i, rule.Label)
		}
	}

	return file.Rules, nil
}
