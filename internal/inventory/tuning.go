package inventory

// Economy tuning. Feeding refunds a cut of the food's price to keep coins
// circulating; care actions pay out so an attentive player can afford the
// shop without grinding.
const (
	StartingCoins = 6000

	feedRefundPercent = 25

	playHappiness = 25
	playReward    = 100

	vetHealthBoost = 30
	vetReward      = 500

	exerciseDrain       = 10
	exerciseHealthBoost = 15
	exerciseReward      = 200

	wearReward = 100
)

// Items every new game starts with.
const (
	seedFoodName = "Orange"
	seedFoodQty  = 5
	seedToyName  = "Wand"
	seedToyQty   = 1
)
