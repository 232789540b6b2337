package analytics

import (
	"testing"

	"flexicoach/fincoach/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func challengeByID(challenges []models.Challenge, id string) *models.Challenge {
	for i := range challenges {
		if challenges[i].ID == id {
			return &challenges[i]
		}
	}
	return nil
}

func TestGenerateChallengesNeedsFiveRows(t *testing.T) {
	set := models.NewTransactionSet([]models.Transaction{
		tx(1, "a", 100, true, "", ""),
		tx(2, "b", 100, true, "", ""),
	})
	assert.Nil(t, GenerateChallenges(set))
}

func TestGenerateChallengesCore(t *testing.T) {
	set := models.NewTransactionSet([]models.Transaction{
		tx(1, "groceries", 450.50, true, models.CategoryFood, models.LabelNeed),
		tx(3, "uber", 220.25, true, models.CategoryTransport, models.LabelNeed),
		tx(5, "rent", 12000, true, models.CategoryRent, models.LabelNeed),
		tx(7, "pharmacy", 330, true, models.CategoryHealth, models.LabelNeed),
		tx(9, "movie", 600, true, models.CategoryEntertainment, models.LabelWant),
	})

	challenges := GenerateChallenges(set)
	require.NotEmpty(t, challenges)

	// 9-day range, 5 spending days, 4 no-spend days
	noSpend := challengeByID(challenges, "no_spend_days")
	require.NotNil(t, noSpend)
	assert.Equal(t, 4.0, noSpend.Current)
	assert.Equal(t, 7.0, noSpend.Target)
	assert.Equal(t, 150, noSpend.Points)

	roundUp := challengeByID(challenges, "round_up_savings")
	require.NotNil(t, roundUp)
	assert.InDelta(t, 1.25, roundUp.Target, 1e-9)

	daily := challengeByID(challenges, "daily_limit")
	require.NotNil(t, daily)
	assert.Equal(t, 7.0, daily.Target)
	assert.Equal(t, "Hard", daily.Difficulty)

	topCat := challengeByID(challenges, "category_reduction")
	require.NotNil(t, topCat)
	assert.Contains(t, topCat.Title, "Rent")
	assert.Equal(t, float64(int(12000*0.8)), topCat.Target)
}

func TestGenerateChallengesEatingOut(t *testing.T) {
	set := models.NewTransactionSet([]models.Transaction{
		tx(1, "swiggy order", 300, true, models.CategoryFood, models.LabelWant),
		tx(2, "zomato dinner", 400, true, models.CategoryFood, models.LabelWant),
		tx(3, "cafe coffee day", 150, true, models.CategoryFood, models.LabelWant),
		tx(4, "pizza hut", 550, true, models.CategoryFood, models.LabelWant),
		tx(5, "groceries", 800, true, models.CategoryFood, models.LabelNeed),
	})

	challenges := GenerateChallenges(set)
	eatingOut := challengeByID(challenges, "reduce_eating_out")
	require.NotNil(t, eatingOut)
	assert.Equal(t, "Home Chef Challenge", eatingOut.Title)
	assert.Equal(t, "Easy", eatingOut.Difficulty)
	assert.GreaterOrEqual(t, eatingOut.Target, 1.0)
}
