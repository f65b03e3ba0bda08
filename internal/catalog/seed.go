package catalog

// Default returns the stock shop every new game starts with.
func Default() *Catalog {
	return New(
		[]Food{
			{Name: "Orange", Price: 50, Fullness: 5, Description: "A tangy, sweet taste!"},
			{Name: "Bunny Cookie", Price: 60, Fullness: 6, Description: "Jumps around in your mouth!"},
			{Name: "Swiss Roll", Price: 200, Fullness: 20, Description: "Sweet swirls of joy"},
			{Name: "Carrot Cake", Price: 350, Fullness: 35, Description: "With uncomfortably orange carrot icing"},
			{Name: "Chicken", Price: 650, Fullness: 65, Description: "A complete feast for your soul"},
			{Name: "Lamb Chop", Price: 1100, Fullness: 100, Description: "The fanciest bite in town!"},
		},
		[]Toy{
			{Name: "Wand", Price: 199, Description: "For aspiring magicians!"},
			{Name: "Basketball", Price: 199, Description: "Perfect for indoor slam dunks"},
			{Name: "Fan", Price: 249, Description: "Who knew wind could be this fun?"},
			{Name: "Stuffed Animal", Price: 299, Description: "Slightly lumpy from all that love!"},
			{Name: "Guitar", Price: 299, Description: "Perfect for shredding... literally!"},
			{Name: "Unicorn Balloon", Price: 349, Description: "Hold on tight so it doesn't fly away!"},
		},
		[]Gift{
			{Name: "bamboo hat", Price: 3000},
			{Name: "silk cape", Price: 3000},
			{Name: "aviator goggles", Price: 3000},
		},
	)
}
