package catalog

// Default products seeded into an empty catalog so the planner always has
// something to select. Nutritional values are typical commercial products.

var defaultCHOProducts = []CHOProduct{
	{
		Name: "2:1 gel, no caffeine (25 g)", Kind: KindGel,
		CHOGrams: 25, GlucoseGrams: 16.7, FructoseGrams: 8.3,
		Notes: "2:1 glucose:fructose mix",
	},
	{
		Name: "2:1 gel with caffeine (25 g)", Kind: KindGel,
		CHOGrams: 25, GlucoseGrams: 16.7, FructoseGrams: 8.3, CaffeineMg: 100,
		Notes: "100 mg caffeine",
	},
	{
		Name: "Glucose-only gel (30 g)", Kind: KindGel,
		CHOGrams: 30, GlucoseGrams: 30,
	},
	{
		Name: "High-fructose gel (30 g)", Kind: KindGel,
		CHOGrams: 30, GlucoseGrams: 10, FructoseGrams: 20,
	},
	{
		Name: "Sucrose bar (30 g)", Kind: KindBar,
		CHOGrams: 30, GlucoseGrams: 10, SucroseGrams: 20,
	},
}

var defaultDrinks = []Drink{
	{
		Name: "Isotonic drink 6% (500 ml)",
		MlPerServing: 500, CHOPerServing: 30, SodiumPerServing: 300,
		Notes: "~6% CHO, ~300 mg Na per serving",
	},
	{
		Name: "Concentrated drink 12% (500 ml)",
		MlPerServing: 500, CHOPerServing: 60, SodiumPerServing: 500,
		Notes: "~12% CHO, ~500 mg Na per serving",
	},
	{
		Name: "Water (500 ml)",
		MlPerServing: 500,
		Notes: "no CHO, no sodium",
	},
}

var defaultElectrolytes = []Electrolyte{
	{Name: "Sodium capsule 200 mg", SodiumPerUnit: 200},
	{Name: "Sodium capsule 500 mg", SodiumPerUnit: 500},
}
