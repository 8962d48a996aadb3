package registry

// defaultLists is the built-in token inventory for the Indian mobile
// esports market.
var defaultLists = map[ListKey][]string{
	KeyGames: {
		"bgmi", "free fire", "free fire max", "cod mobile", "valorant", "pubg mobile",
		"clash royale", "clash of clans", "ludo king", "chess", "fifa mobile", "asphalt 9",
	},
	KeyIntents: {
		"tournament", "tournaments", "scrims", "custom room", "league", "cup",
		"championship", "esports tournament", "online tournament", "match",
		"registration", "leaderboard",
	},
	KeyGeoTargets: {
		"india", "mumbai", "delhi", "bangalore", "hyderabad", "chennai", "kolkata",
		"pune", "ahmedabad", "jaipur", "lucknow", "kochi", "chandigarh", "indore",
		"bhopal", "patna", "surat", "nagpur", "guwahati", "bhubaneswar",
		"maharashtra", "uttar pradesh", "karnataka", "tamil nadu", "west bengal",
	},
	KeyModifiers: {
		"free", "paid", "daily", "weekly", "online", "best", "live", "upcoming",
		"today", "tonight", "solo", "duo", "squad", "1v1", "mobile", "pro",
		"beginner", "women", "college", "school",
	},
	KeyFormats: {
		"battle royale", "tdm", "clash squad", "knockout", "round robin", "4v4",
	},
	KeyPrizes: {
		"with cash prize", "with prizes", "win money", "win diamonds", "win uc", "prize pool",
	},
	KeyPlatforms: {
		"app", "website", "discord", "youtube", "instagram",
	},
	KeyHindiPhrases: {
		"kaise khele", "kaise join kare", "mein kaise jeete", "free mein",
		"registration kaise kare", "ka link", "aaj ka", "paise jeeto",
	},
	KeyYears: {
		"2025", "2026", "2027",
	},
}

// Every default blueprint draws from games and intents so that filtering on
// either narrows the whole universe. Weights sum to 100.
var defaultBlueprints = []Blueprint{
	{Name: "core", Keys: []ListKey{KeyGames, KeyIntents}, Weight: 10},
	{Name: "modifier", Keys: []ListKey{KeyModifiers, KeyGames, KeyIntents}, Weight: 20},
	{Name: "geo", Keys: []ListKey{KeyGames, KeyIntents, KeyGeoTargets}, Weight: 20},
	{Name: "format", Keys: []ListKey{KeyGames, KeyFormats, KeyIntents}, Weight: 10},
	{Name: "prize", Keys: []ListKey{KeyGames, KeyIntents, KeyPrizes}, Weight: 10},
	{Name: "platform", Keys: []ListKey{KeyGames, KeyIntents, KeyPlatforms}, Weight: 10},
	{Name: "hindi", Keys: []ListKey{KeyGames, KeyIntents, KeyHindiPhrases}, Weight: 10},
	{Name: "year", Keys: []ListKey{KeyGames, KeyIntents, KeyYears}, Weight: 10},
}

var defaultRegistry = mustNew(defaultLists, defaultBlueprints)

// Default returns the built-in registry. It is built once at package init.
func Default() *Registry {
	return defaultRegistry
}

func mustNew(lists map[ListKey][]string, blueprints []Blueprint) *Registry {
	r, err := New(lists, blueprints)
	if err != nil {
		panic(err)
	}
	return r
}
