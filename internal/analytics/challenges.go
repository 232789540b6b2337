package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"flexicoach/fincoach/internal/dateutils"
	"flexicoach/fincoach/internal/models"
)

const minChallengeRows = 5

// eatingOutKeywords marks transactions that look like ordered or restaurant
// food, regardless of how the classifier labeled them.
var eatingOutKeywords = []string{
	"zomato", "swiggy", "restaurant", "cafe", "coffee", "pizza", "food",
}

// GenerateChallenges builds gamified savings challenges sized from the
// user's own spending behavior.
func GenerateChallenges(set *models.TransactionSet) []models.Challenge {
	if set.Len() < minChallengeRows {
		return nil
	}

	var challenges []models.Challenge
	days := totalDays(set)

	var expenseSum float64
	expenseCount := 0
	spendingDays := make(map[string]bool)
	eatingOutCount := 0
	var eatingOutSum float64
	var roundUp float64
	categorySums := make(map[string]float64)

	for _, tx := range set.Transactions {
		if !tx.IsExpense {
			continue
		}
		amount := toFloat(tx.Amount)
		expenseSum += amount
		expenseCount++
		spendingDays[dateutils.DayKey(tx.Date).Format("2006-01-02")] = true
		desc := strings.ToLower(tx.Description)
		for _, kw := range eatingOutKeywords {
			if strings.Contains(desc, kw) {
				eatingOutCount++
				eatingOutSum += amount
				break
			}
		}
		roundUp += math.Ceil(amount) - amount
		if tx.Category != "" {
			categorySums[tx.Category] += amount
		}
	}

	noSpendDays := days - len(spendingDays)
	challenges = append(challenges, models.Challenge{
		ID:          "no_spend_days",
		Title:       "No-Spend Challenge",
		Description: fmt.Sprintf("You have %d no-spend days. Try for %d this month!", noSpendDays, noSpendDays+3),
		Target:      float64(noSpendDays + 3),
		Current:     float64(noSpendDays),
		Reward:      "300 monthly savings",
		Difficulty:  "Medium",
		Points:      150,
	})

	if eatingOutCount >= 3 {
		weekly := float64(eatingOutCount) / (float64(days) / 7)
		target := int(weekly * 0.7)
		if target < 1 {
			target = 1
		}
		challenges = append(challenges, models.Challenge{
			ID:          "reduce_eating_out",
			Title:       "Home Chef Challenge",
			Description: fmt.Sprintf("You order food %d times/week. Reduce to %d times!", int(weekly), target),
			Target:      float64(target),
			Current:     float64(int(weekly)),
			Reward:      fmt.Sprintf("%d monthly savings", int(eatingOutSum*0.3)),
			Difficulty:  "Easy",
			Points:      100,
		})
	}

	challenges = append(challenges, models.Challenge{
		ID:          "round_up_savings",
		Title:       "Round-Up Saver",
		Description: "Round up every purchase to the nearest unit and save the difference",
		Target:      round2(roundUp),
		Current:     0,
		Reward:      fmt.Sprintf("%d painless savings", int(roundUp)),
		Difficulty:  "Easy",
		Points:      75,
	})

	if expenseCount > 0 {
		dailyLimit := expenseSum / float64(expenseCount) * 0.85
		challenges = append(challenges, models.Challenge{
			ID:          "daily_limit",
			Title:       "Daily Budget Master",
			Description: fmt.Sprintf("Stay under %d per day for 7 consecutive days", int(dailyLimit)),
			Target:      7,
			Current:     0,
			Reward:      "500 monthly savings + Streaker Badge",
			Difficulty:  "Hard",
			Points:      200,
		})
	}

	if topCat, topSum, ok := topCategory(categorySums); ok {
		challenges = append(challenges, models.Challenge{
			ID:          "category_reduction",
			Title:       fmt.Sprintf("Cut %s by 20%%", titleCase(topCat)),
			Description: fmt.Sprintf("Your %s spending is %d. Reduce by 20%%!", topCat, int(topSum)),
			Target:      float64(int(topSum * 0.8)),
			Current:     float64(int(topSum)),
			Reward:      fmt.Sprintf("%d savings", int(topSum*0.2)),
			Difficulty:  "Medium",
			Points:      175,
		})
	}

	return challenges
}

func topCategory(sums map[string]float64) (string, float64, bool) {
	if len(sums) == 0 {
		return "", 0, false
	}
	names := make([]string, 0, len(sums))
	for name := range sums {
		names = append(names, name)
	}
	// name tiebreak keeps the pick deterministic
	sort.Slice(names, func(i, j int) bool {
		if sums[names[i]] != sums[names[j]] {
			return sums[names[i]] > sums[names[j]]
		}
		return names[i] < names[j]
	})
	return names[0], sums[names[0]], true
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
