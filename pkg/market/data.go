package market

// Built-in shop data. Prices are whole dollars; any foreign currency in a
// description is cosmetic only and never enters a computation.

// BlackMarket is the catalog behind the /market command.
func BlackMarket() *Catalog {
	return NewCatalog(
		Category{
			Key:   "Guns",
			Emoji: "🔫",
			Blurb: "Firearms and ammunition",
			Items: []Item{
				{Name: "Combat Pistol", Price: price(54500), Description: "Standard sidearm for combat situations"},
				{Name: "MK2 Pistol", Price: price(65000), Description: "Advanced pistol with improved accuracy"},
				{Name: "Glock18c", Price: price(95000), Description: "High-rate automatic pistol"},
				{Name: "Micro SMG", Price: price(99500), Description: "Compact submachine gun"},
				{Name: "Combat PDW", Price: price(129500), Description: "Personal defense weapon"},
				{Name: "Shotgun", Price: price(120000), Description: "Close-range combat shotgun"},
				{Name: "Ammo Pistol", Price: price(1500), Description: "Ammunition for pistols"},
				{Name: "Ammo SMG", Price: price(2000), Description: "Ammunition for submachine guns"},
				{Name: "Ammo Shotgun", Price: price(2000), Description: "Ammunition for shotguns"},
			},
		},
		Category{
			Key:   "Drugs",
			Emoji: "💊",
			Blurb: "Narcotics and substances",
			Items: []Item{
				{Name: "Pallet Coke", Price: price(1050000), Description: "High-grade cocaine pallet"},
				{Name: "Pallet Weed", Price: price(800000), Description: "Premium cannabis pallet"},
			},
		},
		Category{
			Key:   "Heist Pack",
			Emoji: "💰",
			Blurb: "Heist equipment packages",
			Items: []Item{
				{Name: "Fleeca Heist Pack", Price: price(60000), Description: "Equipment pack for bank heists"},
				{Name: "Bijoux Heist Pack", Price: price(100000), Description: "Specialized jewelry store heist kit"},
				{Name: "Paleto Heist Pack", Price: price(100000), Description: "Advanced heist equipment package"},
			},
		},
	)
}

// GhostShopCategory is the single implicit category of the toggle-button
// ghost shop opened by /ghostshop.
const GhostShopCategory = "Ghost Shop"

// GhostShop sells untraceable gear through toggle buttons.
func GhostShop() *Catalog {
	return NewCatalog(
		Category{
			Key:   GhostShopCategory,
			Emoji: "👻",
			Blurb: "Untraceable gear, no questions asked",
			Items: []Item{
				{Name: "Ghost Organization", Price: price(25000), Description: "Stay off the radar for 30 minutes"},
				{Name: "Scrambler Chip", Price: price(40000), Description: "Blocks phone tracking"},
				{Name: "Armor Plate", Price: price(15000), Description: "Single-use body armor insert"},
				{Name: "Lockpick Set", Price: price(8000), Description: "Opens most vehicle doors"},
				{Name: "Burner Phone", Price: price(5000), Description: "One contract, then it melts"},
				{Name: "Thermal Charge", Price: price(180000), Description: "Cuts through reinforced vault doors"},
				{Name: "Night Vision", Price: price(32000), Description: "Military surplus optics"},
				{Name: "Duffel Bag", Price: price(12000), Description: "Carries more than it should"},
			},
		},
	)
}

// WorldMarket is the per-country catalog behind /worldmarket.
func WorldMarket() *Catalog {
	return NewCatalog(
		Category{
			Key:   "United States",
			Emoji: "🇺🇸",
			Blurb: "American imports",
			Items: []Item{
				{Name: "Muscle Car Part", Price: price(45000), Description: "V8 crate engine, lightly used"},
				{Name: "Bald Eagle Decal", Price: price(2500), Description: "Freedom, adhesive-backed"},
				{Name: "BBQ Smoker", Price: price(18000), Description: "Texas-size, trailer hitch included"},
			},
		},
		Category{
			Key:   "Japan",
			Emoji: "🇯🇵",
			Blurb: "Japanese imports",
			Items: []Item{
				{Name: "Katana", Price: price(75000), Description: "Hand-forged blade (¥11,000,000 at origin)"},
				{Name: "Drift Tires", Price: price(22000), Description: "Set of four, smoke guaranteed"},
				{Name: "Vending Machine", Price: price(30000), Description: "Stocked with mystery drinks"},
			},
		},
		Category{
			Key:   "Italy",
			Emoji: "🇮🇹",
			Blurb: "Italian imports",
			Items: []Item{
				{Name: "Tailored Suit", Price: price(55000), Description: "Cut in Milan (€50,000 at origin)"},
				{Name: "Espresso Machine", Price: price(12000), Description: "Lever-operated, brass boiler"},
				{Name: "Supercar Badge", Price: price(9000), Description: "Provenance not included"},
			},
		},
		Category{
			Key:   "France",
			Emoji: "🇫🇷",
			Blurb: "French imports",
			Items: []Item{
				{Name: "Vintage Wine Crate", Price: price(38000), Description: "Twelve bottles, cellar-aged"},
				{Name: "Perfume Case", Price: price(15000), Description: "Counterfeit-proof seals (€14,000 at origin)"},
				{Name: "Art Print", Price: price(27000), Description: "The Louvre never noticed"},
			},
		},
		Category{
			Key:   "Mexico",
			Emoji: "🇲🇽",
			Blurb: "Mexican imports",
			Items: []Item{
				{Name: "Agave Spirit Barrel", Price: price(42000), Description: "Aged añejo, uncut (MX$760,000 at origin)"},
				{Name: "Lucha Mask", Price: price(3500), Description: "Worn once, allegedly"},
				{Name: "Hot Sauce Crate", Price: price(6000), Description: "Handle with gloves"},
			},
		},
	)
}
