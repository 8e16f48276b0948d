package recipe

import "fmt"

// sampleDish is a raw dataset row the sample corpus is derived from. The
// fields deliberately look like scraped data (free-form time strings,
// uncleaned ingredient names) so the derivation rules do real work.
type sampleDish struct {
	name        string
	keywords    []string
	ingredients []Ingredient
	prepRaw     string
	cookRaw     string
	steps       []Instruction
	nutrition   Nutrition
}

var sampleDishes = []sampleDish{
	{
		name:     "Chicken Tikka Masala Dinner",
		keywords: []string{"indian", "curry", "dinner"},
		ingredients: []Ingredient{
			{Name: "Chicken breast!", Quantity: 500, Unit: "g"},
			{Name: "The heavy cream", Quantity: 200, Unit: "ml"},
			{Name: "Garam masala", Quantity: 2, Unit: "tbsp"},
		},
		prepRaw: "20 minutes",
		cookRaw: "45 minutes",
		steps: []Instruction{
			{Step: 1, Text: "Marinate the chicken"},
			{Step: 2, Text: "Simmer the sauce", TimerDuration: intPtr(1200)},
			{Step: 3, Text: "Combine and serve"},
		},
		nutrition: Nutrition{Calories: 620, Protein: 42, Carbs: 18, Fats: 40, Fiber: 3, Sodium: 900, Sugar: 8},
	},
	{
		name:     "Overnight Oatmeal Bowl",
		keywords: []string{"breakfast", "gluten-free"},
		ingredients: []Ingredient{
			{Name: "Rolled oats", Quantity: 1, Unit: "cup"},
			{Name: "An apple (diced)", Quantity: 1, Unit: "whole"},
			{Name: "Maple syrup", Quantity: 1, Unit: "tbsp"},
		},
		prepRaw: "10 minutes",
		cookRaw: "",
		steps: []Instruction{
			{Step: 1, Text: "Combine everything in a jar"},
			{Step: 2, Text: "Refrigerate overnight"},
		},
		nutrition: Nutrition{Calories: 340, Protein: 10, Carbs: 62, Fats: 6, Fiber: 8, Sodium: 120, Sugar: 18},
	},
	{
		name:     "Beef and Broccoli Wok Stir-Fry",
		keywords: []string{"chinese", "dinner", "low-carb"},
		ingredients: []Ingredient{
			{Name: "Beef sirloin, sliced", Quantity: 400, Unit: "g"},
			{Name: "Broccoli florets", Quantity: 300, Unit: "g"},
			{Name: "Soy sauce", Quantity: 3, Unit: "tbsp"},
		},
		prepRaw: "15 minutes",
		cookRaw: "10 minutes",
		steps: []Instruction{
			{Step: 1, Text: "Sear the beef in batches"},
			{Step: 2, Text: "Stir-fry the broccoli", TimerDuration: intPtr(300)},
			{Step: 3, Text: "Toss with the sauce"},
		},
		nutrition: Nutrition{Calories: 480, Protein: 38, Carbs: 14, Fats: 30, Fiber: 4, Sodium: 1100, Sugar: 5},
	},
	{
		name:     "Margherita Pizza",
		keywords: []string{"italian", "dinner"},
		ingredients: []Ingredient{
			{Name: "Pizza dough", Quantity: 1, Unit: "ball"},
			{Name: "Fresh mozzarella cheese", Quantity: 200, Unit: "g"},
			{Name: "Basil leaves", Quantity: 10, Unit: "whole"},
		},
		prepRaw: "30 minutes",
		cookRaw: "1 hour",
		steps: []Instruction{
			{Step: 1, Text: "Stretch the dough"},
			{Step: 2, Text: "Top and rest"},
			{Step: 3, Text: "Preheat the stone", TimerDuration: intPtr(2700)},
			{Step: 4, Text: "Bake until blistered", TimerDuration: intPtr(480)},
			{Step: 5, Text: "Finish with basil"},
			{Step: 6, Text: "Slice and serve"},
		},
		nutrition: Nutrition{Calories: 710, Protein: 28, Carbs: 88, Fats: 26, Fiber: 5, Sodium: 1300, Sugar: 7},
	},
	{
		name:     "Black Bean Taco Snack Plate",
		keywords: []string{"mexican", "snack"},
		ingredients: []Ingredient{
			{Name: "Black beans", Quantity: 1, Unit: "can"},
			{Name: "Corn tortillas", Quantity: 6, Unit: "whole"},
			{Name: "Salsa verde", Quantity: 0.5, Unit: "cup"},
		},
		prepRaw: "10 minutes",
		cookRaw: "10 minutes",
		steps: []Instruction{
			{Step: 1, Text: "Warm the beans"},
			{Step: 2, Text: "Char the tortillas"},
			{Step: 3, Text: "Assemble"},
		},
		nutrition: Nutrition{Calories: 390, Protein: 14, Carbs: 66, Fats: 8, Fiber: 14, Sodium: 700, Sugar: 4},
	},
	{
		name:     "Pad Thai with Tofu",
		keywords: []string{"thai", "dinner", "vegetarian"},
		ingredients: []Ingredient{
			{Name: "Rice noodles", Quantity: 250, Unit: "g"},
			{Name: "Firm tofu", Quantity: 300, Unit: "g"},
			{Name: "Tamarind paste", Quantity: 2, Unit: "tbsp"},
		},
		prepRaw: "25 minutes",
		cookRaw: "15 minutes",
		steps: []Instruction{
			{Step: 1, Text: "Soak the noodles"},
			{Step: 2, Text: "Crisp the tofu", TimerDuration: intPtr(420)},
			{Step: 3, Text: "Toss over high heat"},
			{Step: 4, Text: "Garnish and serve"},
		},
		nutrition: Nutrition{Calories: 540, Protein: 22, Carbs: 74, Fats: 18, Fiber: 5, Sodium: 950, Sugar: 12},
	},
}

// SampleCorpus builds count corpus records by running the sample dataset
// rows through the same derivation rules a real dataset import uses.
// Deterministic: the same count always produces the same records.
func SampleCorpus(count int) []Record {
	records := make([]Record, 0, count)
	for i := 0; i < count; i++ {
		dish := sampleDishes[i%len(sampleDishes)]

		names := make([]string, len(dish.ingredients))
		ingredients := make([]Ingredient, len(dish.ingredients))
		for j, ing := range dish.ingredients {
			ing.Name = CleanIngredientName(ing.Name)
			if ing.Substitutions == nil {
				ing.Substitutions = []string{}
			}
			ingredients[j] = ing
			names[j] = ing.Name
		}

		prep := ParseTimeMinutes(dish.prepRaw)
		cook := ParseTimeMinutes(dish.cookRaw)
		total := prep + cook

		tags := DeriveDietaryTags(names, dish.keywords)
		if tags == nil {
			tags = []string{}
		}

		records = append(records, Record{
			ID:           fmt.Sprintf("recipe_%04d", i+1),
			Title:        dish.name,
			Image:        "/images/placeholder-recipe.png",
			Description:  fmt.Sprintf("A %s %s dish", DeriveCuisine(dish.keywords, dish.name), dish.name),
			PrepTime:     prep,
			CookTime:     cook,
			TotalTime:    total,
			Servings:     2 + i%4,
			Difficulty:   DeriveDifficulty(len(dish.steps), total),
			MealType:     DeriveMealType(dish.keywords, dish.name),
			Cuisine:      DeriveCuisine(dish.keywords, dish.name),
			Ingredients:  ingredients,
			Instructions: dish.steps,
			Nutrition:    dish.nutrition,
			DietaryTags:  tags,
		})
	}
	return records
}

func intPtr(v int) *int { return &v }
