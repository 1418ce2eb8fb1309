package classify

func anyOf(main, sub string, keywords ...string) Rule {
	return Rule{Kind: KindAny, Keywords: keywords, Main: main, Sub: sub}
}

// rules is the fixed classification table. Order carries priority: specific
// and disambiguating rules sit above the broad catch-alls that would
// otherwise shadow them (Entertainment sits above Grocery so "Star Wars
// snack bowl" style collectibles do not land in Snacks), and the first
// matching rule wins.
var rules = []Rule{
	// Babies & Kids
	anyOf("Babies & Kids", "Kids Toys",
		"kids toy", "children toy", "toy car", "toy truck", "atv", "go kart",
		"hoverboard", "kids bike", "baby toy", "toddler toy", "ride-on",
		"remote control car", "rc car", "maisto", "hot wheels"),
	anyOf("Babies & Kids", "Baby Products",
		"baby", "infant", "toddler", "diaper", "baby food", "formula",
		"crib", "stroller", "car seat", "baby monitor", "nursery"),

	// Video Games
	anyOf("Video Games", "Video Game Consoles",
		"ps5", "playstation 5", "ps4", "playstation 4", "xbox series x",
		"xbox series s", "xbox one", "nintendo switch", "switch oled"),
	anyOf("Video Games", "Controllers & Accessories",
		"game controller", "xbox controller", "playstation controller",
		"ps5 controller", "switch controller", "dualsense", "dualshock",
		"8bitdo", "scuf"),
	anyOf("Video Games", "Video Game Memberships",
		"xbox game pass", "game pass ultimate", "playstation plus", "ps plus",
		"ps+", "nintendo switch online", "ea play", "ubisoft+"),
	anyOf("Video Games", "Computer & PC Games",
		"steam game", "steam key", "epic games store", "origin game",
		"pc game", "battle.net", "gog.com", "gaming pc", "steam deck"),
	anyOf("Video Games", "Nintendo Switch", "switch game", "nintendo switch game"),
	anyOf("Video Games", "PlayStation", "ps5 game", "ps4 game", "playstation game"),
	anyOf("Video Games", "Xbox", "xbox game"),

	// Computers
	anyOf("Computers", "GPU's",
		"rtx ", "gtx ", "rx 6", "rx 7", "graphics card", "geforce", "radeon", "gpu"),
	anyOf("Computers", "SSD's & Hard Drives",
		"ssd", "solid state drive", "nvme", "m.2", "hard drive", "hdd", "external drive"),
	anyOf("Computers", "Memory", "ram ", "ddr4", "ddr5", "memory kit", "corsair vengeance"),
	anyOf("Computers", "Laptops",
		"laptop", "notebook", "chromebook", "macbook", "gaming laptop", "ultrabook"),
	anyOf("Computers", "Desktop Computers",
		"desktop pc", "gaming desktop", "prebuilt pc", "imac", "desktop computer"),
	anyOf("Computers", "Computer Networking",
		"router", "wi-fi", "wifi 6", "wifi 7", "mesh system", "ethernet switch",
		"network adapter", "modem"),
	anyOf("Computers", "Printers",
		"printer", "inkjet", "laser printer", "toner", "ink cartridge",
		"all-in-one printer"),
	anyOf("Computers", "Monitors",
		"monitor", "gaming monitor", "curved monitor", "ultrawide", "4k monitor",
		"display"),
	anyOf("Computers", "Mice & Keyboards",
		"mouse", "keyboard", "gaming mouse", "gaming keyboard",
		"mechanical keyboard", "wireless mouse"),
	anyOf("Computers", "Internet, Websites & VPN's",
		"vpn", "domain", "hosting", "web hosting", "cloud storage", "nord vpn",
		"expressvpn"),

	// Electronics
	anyOf("Electronics", "Cell Phones & Plans",
		"iphone", "galaxy s", "galaxy z", "pixel phone", "smartphone",
		"cell phone", "mobile plan", "wireless plan", "us mobile", "mint mobile",
		"visible", "cricket wireless"),
	anyOf("Electronics", "Tablets",
		"ipad", "galaxy tab", "surface pro", "kindle fire", "android tablet"),
	anyOf("Electronics", "Cameras & Photography",
		"camera", "mirrorless", "dslr", "gopro", "action camera", "webcam",
		"lens", "canon", "nikon", "sony alpha"),
	anyOf("Electronics", "Tracking Devices",
		"airtag", "air tag", "tile tracker", "tracker", "bluetooth tracker",
		"gps tracker"),
	anyOf("Electronics", "TV's",
		"4k tv", "hdr tv", "oled tv", "qled tv", "uhd tv", "smart tv", "tcl tv",
		"samsung tv", "lg tv", "sony tv"),
	anyOf("Electronics", "Sound Bars", "soundbar", "sound bar"),
	anyOf("Electronics", "Speakers",
		"bluetooth speaker", "smart speaker", "portable speaker", "jbl",
		"bose speaker", "alexa", "echo dot"),
	anyOf("Electronics", "Headphones, Headsets & Earbuds",
		"headphones", "earbuds", "earphones", "headset", "gaming headset",
		"airpods", "beats", "sony wh"),
	anyOf("Electronics", "Projectors", "projector", "home theater projector", "4k projector"),
	anyOf("Electronics", "Smart Watches & Wearables",
		"smartwatch", "apple watch", "fitbit", "wearable", "fitness tracker",
		"garmin watch"),
	anyOf("Electronics", "Chargers & Power Banks",
		"power bank", "portable charger", "anker", "charging cable", "usb-c cable"),
	anyOf("Electronics", "UPS, Surge Protectors & Powerstrips",
		"ups ", "surge protector", "power strip", "battery backup"),

	// Entertainment. Sits above Grocery so branded collectibles and media
	// do not fall into the food catch-alls.
	anyOf("Entertainment", "Collectibles & Toys",
		"funko pop", "funko", "action figure", "collectible", "replica", "lego",
		"building set", "lego set", "star wars", "marvel legends", "mcfarlane",
		"model kit"),
	anyOf("Entertainment", "Streaming Services",
		"disney+", "disney plus", "netflix", "hulu", "paramount+", "peacock",
		"max ", "hbo max", "apple tv+", "prime video"),
	anyOf("Entertainment", "Musical Instruments",
		"guitar", "electric guitar", "acoustic guitar", "bass guitar", "piano",
		"keyboard", "drum", "ukulele", "violin", "synthesizer", "midi"),
	anyOf("Entertainment", "Movies", "blu-ray", "dvd", "movie", "4k blu-ray"),
	anyOf("Entertainment", "TV Series & TV Shows",
		"tv series", "tv show", "season 1", "season 2", "complete series"),
	anyOf("Entertainment", "Games, Board Games & Card Games",
		"board game", "card game", "tabletop", "dungeons", "magic the gathering",
		"pokemon cards"),

	// Grocery
	anyOf("Grocery", "Household Goods",
		"paper towel", "toilet paper", "tissues", "cleaning supplies",
		"detergent", "dish soap", "laundry", "trash bags", "household",
		"cleaning wipes", "lysol", "clorox"),
	anyOf("Grocery", "Snacks, Nuts & Chips",
		"chips", "doritos", "cheetos", "pringles", "snack", "snacks",
		"trail mix", "mixed nuts", "almonds", "cashews", "pistachios",
		"crackers", "popcorn"),
	// "coffee" needs a brewing context; otherwise a coffee table stays
	// eligible for the Furniture rule further down.
	{
		Kind:    KindContext,
		Primary: []string{"coffee"},
		Context: []string{"pod", "k-cup", "beans", "ground", "instant", "nespresso", "starbucks", "folgers"},
		Main:    "Grocery",
		Sub:     "Drinks & Beverages",
	},
	anyOf("Grocery", "Drinks & Beverages",
		"soda", "cola", "sparkling water", "energy drink", "tea", "juice",
		"gatorade", "vitamin water"),
	anyOf("Grocery", "Breakfast Foods",
		"cereal", "oatmeal", "granola", "pancake mix", "breakfast"),
	anyOf("Grocery", "Pasta", "pasta", "spaghetti", "macaroni", "penne", "linguine"),
	anyOf("Grocery", "Rice & Grains", "rice", "quinoa", "brown rice", "wild rice"),
	anyOf("Grocery", "Soups, Sauces, Packaged Meals & Canned Goods",
		"frozen dinner", "soup", "canned soup", "canned", "microwave meal", "ramen"),
	anyOf("Grocery", "Condiments & Spices",
		"ketchup", "mustard", "hot sauce", "spice", "seasoning", "sauce",
		"mayo", "sriracha"),
	anyOf("Grocery", "Meat & Frozen Foods",
		"turkey", "chicken breast", "ground beef", "steak", "pork", "salmon",
		"frozen pizza", "ice cream"),

	// Home & Home Improvement
	anyOf("Home & Home Improvement", "Kitchen & Cookware",
		"cookware", "frying pan", "skillet", "pot set", "dutch oven", "bakeware",
		"silverware", "flatware", "utensil", "knife set", "cutting board",
		"mixing bowl", "calphalon", "tefal", "cast iron", "non-stick",
		"parchment paper"),
	anyOf("Home & Home Improvement", "Lighting",
		"lamp", "desk lamp", "floor lamp", "light bulb", "led light", "led strip",
		"chandelier", "ceiling light", "smart bulb", "philips hue", "string lights"),
	anyOf("Home & Home Improvement", "Storage & Organization",
		"storage bin", "storage container", "organizer", "shelving",
		"closet organizer", "drawer organizer", "garage storage", "lunch box",
		"insulated lunch"),
	anyOf("Home & Home Improvement", "Grills & Grilling Accessories",
		"grill", "gas grill", "charcoal grill", "pellet grill", "smoker",
		"vertical smoker", "griddle", "grilling", "bbq accessories", "blackstone"),
	anyOf("Home & Home Improvement", "Stoves", "stove", "oven", "range", "cooktop"),
	anyOf("Home & Home Improvement", "Gardening & Outdoor",
		"gardening", "lawn mower", "trimmer", "weed eater", "leaf blower",
		"garden hose", "garden tools", "patio furniture", "patio set", "yard tool"),
	anyOf("Home & Home Improvement", "Mattresses, Sheets & Bedding",
		"mattress", "memory foam mattress", "bedding", "sheet set", "duvet",
		"comforter", "pillow", "bed frame"),
	anyOf("Home & Home Improvement", "Vacuums & Floor Cleaners",
		"vacuum", "stick vac", "robot vacuum", "robovac", "floor cleaner",
		"steam mop", "dyson", "shark vacuum"),
	anyOf("Home & Home Improvement", "Small Appliances",
		"air fryer", "blender", "toaster", "microwave", "coffee maker",
		"espresso machine", "slow cooker", "instant pot", "food processor",
		"stand mixer", "rice cooker", "pressure cooker", "ninja", "keurig"),
	anyOf("Home & Home Improvement", "Refrigerators & Freezers",
		"refrigerator", "fridge", "freezer", "mini fridge"),
	anyOf("Home & Home Improvement", "Washers & Dryers",
		"washer", "washing machine", "dryer", "washer dryer"),
	anyOf("Home & Home Improvement", "Furniture",
		"sofa", "couch", "office chair", "gaming chair", "desk", "dining table",
		"bookshelf", "recliner", "sectional", "futon", "ottoman", "nightstand",
		"dresser", "coffee table", "end table"),
	anyOf("Home & Home Improvement", "Tool Sets",
		"drill", "saw", "circular saw", "miter saw", "tool set", "tool kit",
		"wrench set", "socket set", "screwdriver", "dewalt", "milwaukee",
		"ryobi", "makita"),
	anyOf("Home & Home Improvement", "Ladders", "ladder", "step ladder", "extension ladder"),
	anyOf("Home & Home Improvement", "Air Conditioners, Heaters, Purifiers & More",
		"air purifier", "space heater", "air conditioner", "portable ac",
		"dehumidifier", "humidifier", "fan", "hand warmer"),

	// Clothing & Accessories
	anyOf("Clothing & Accessories", "Shoes",
		"sneakers", "running shoes", "sandals", "boots", "shoe", "clogs",
		"athletic shoes", "nike", "adidas"),
	anyOf("Clothing & Accessories", "Bags & Luggage",
		"backpack", "luggage", "suitcase", "duffel bag", "tote bag",
		"messenger bag", "laptop bag"),
	anyOf("Clothing & Accessories", "Socks",
		"socks", "sock", "ankle socks", "crew socks", "compression socks",
		"goldtoe"),
	anyOf("Clothing & Accessories", "Sleepwear",
		"pajamas", "pj set", "pjs", "sleepwear", "nightgown", "robe", "gap kids"),
	anyOf("Clothing & Accessories", "Apparel",
		"t-shirt", "hoodie", "jacket", "jeans", "pants", "shorts", "dress",
		"sweater", "fleece", "flannel", "outerwear", "apparel", "clothes",
		"clothing", "polo", "sweatshirt"),
	// "watch" only as a whole word, so smartwatch bands and "watching"
	// titles do not land here.
	{Kind: KindWord, Keywords: []string{"watch"}, Main: "Clothing & Accessories", Sub: "Watches"},
	anyOf("Clothing & Accessories", "Watches", "chronograph", "wristwatch", "timepiece"),
	anyOf("Clothing & Accessories", "Sunglasses",
		"sunglasses", "sunglass", "ray-ban", "oakley"),
	anyOf("Clothing & Accessories", "Jewelry",
		"necklace", "bracelet", "earring", "engagement ring", "wedding ring",
		"diamond ring", "gold ring"),
	anyOf("Clothing & Accessories", "Eyewear",
		"eyeglasses", "prescription glasses", "reading glasses", "goggles",
		"optical", "goggles4u"),

	// Health & Beauty
	anyOf("Health & Beauty", "Personal Care",
		"cotton swab", "q-tip", "cotton ball", "hair straightener",
		"curling iron", "hair dryer", "blow dryer", "flat iron", "hair styling"),
	anyOf("Health & Beauty", "Vitamins",
		"vitamin", "multivitamin", "supplement", "collagen", "omega-3",
		"probiotics", "magnesium"),
	anyOf("Health & Beauty", "Protein Powder & Shakes",
		"protein powder", "whey", "casein", "protein shake", "pre-workout",
		"creatine"),
	anyOf("Health & Beauty", "Shampoo & Hair Care",
		"shampoo", "conditioner", "hair care", "hair oil"),
	anyOf("Health & Beauty", "Toothpaste, Toothbrushes & Oral Care",
		"toothpaste", "toothbrush", "mouthwash", "oral care", "floss", "whitening"),
	anyOf("Health & Beauty", "Razors & Shaving Supplies",
		"razor", "shaving cream", "shaver", "electric shaver", "gillette"),
	anyOf("Health & Beauty", "Skin Care",
		"face cream", "moisturizer", "skin care", "lotion", "serum",
		"sunscreen", "spf"),
	anyOf("Health & Beauty", "Fragrances", "perfume", "cologne", "fragrance", "body spray"),

	// Sporting Goods
	anyOf("Sporting Goods", "Guns, Ammo & Accessories",
		"gun safe", "ammo", "ammunition", "9mm", ".22lr", "5.56mm", "brass",
		"firearm"),
	anyOf("Sporting Goods", "Hunting",
		"hunting", "trail camera", "camo", "camouflage", "hunting boots",
		"deer", "optics", "rifle scope", "binoculars"),
	anyOf("Sporting Goods", "Fishing",
		"fishing", "fish finder", "fishing rod", "fishing reel", "tackle",
		"lure", "bait"),
	anyOf("Sporting Goods", "Golf",
		"golf", "golf ball", "golf club", "putter", "driver", "iron set",
		"golf bag"),
	anyOf("Sporting Goods", "Knives",
		"knife", "pocket knife", "hunting knife", "blade", "swiss army"),
	anyOf("Sporting Goods", "Sports Equipment",
		"basketball hoop", "baseball bat", "soccer ball", "football",
		"sports ball", "volleyball", "tennis", "badminton", "ping pong",
		"table tennis"),
	anyOf("Sporting Goods", "Fitness & Wellness",
		"yoga mat", "resistance band", "foam roller", "fitness tracker",
		"fitness", "wellness", "pilates", "heavy bag", "boxing", "jump rope"),
	anyOf("Sporting Goods", "Bicycles & Bike Accessories",
		"bike", "bicycle", "mountain bike", "road bike", "e-bike", "bike helmet"),
	anyOf("Sporting Goods", "Exercise Equipment",
		"treadmill", "elliptical", "rowing machine", "dumbbell", "kettlebell",
		"weight set", "home gym", "smith cage", "walking pad", "weight bench",
		"barbell", "exercise bike"),
	anyOf("Sporting Goods", "Pickleball", "pickleball", "paddle", "pickle ball"),
	anyOf("Sporting Goods", "Coolers", "cooler", "ice chest", "yeti cooler"),
	anyOf("Sporting Goods", "Water Bottles",
		"water bottle", "hydro flask", "yeti bottle", "insulated bottle"),
	anyOf("Sporting Goods", "Camping & Outdoor",
		"tent", "sleeping bag", "camping", "backpacking", "hiking boots",
		"trekking pole", "camping gear", "hammock", "camp stove"),

	// Autos
	anyOf("Autos", "Car Accessories",
		"tire inflator", "air compressor", "car charger", "dash cam", "dashcam",
		"car mount", "phone mount", "car vacuum", "seat cover", "magsafe car"),
	anyOf("Autos", "Motor Oil",
		"motor oil", "engine oil", "synthetic oil", "mobil 1", "castrol"),
	anyOf("Autos", "Auto Detailing & Car Care",
		"car wash", "car wax", "tire shine", "detail spray", "car polish"),
	anyOf("Autos", "Jump Starter", "jump starter", "jumper starter", "jump box"),
	anyOf("Autos", "Automotive Battery Chargers",
		"car battery charger", "battery maintainer", "battery tender"),
	anyOf("Autos", "EV Chargers", "ev charger", "level 2 charger", "tesla charger"),
	anyOf("Autos", "Tires", "car tire", "all-season tire", "winter tire", "tire set"),

	// Travel & Vacations
	anyOf("Travel & Vacations", "Hotels", "hotel", "resort", "vacation rental", "airbnb"),
	anyOf("Travel & Vacations", "Flights",
		"flight", "airfare", "round-trip flights", "airline tickets"),
	anyOf("Travel & Vacations", "Car Rentals", "car rental", "rental car"),
	anyOf("Travel & Vacations", "Cruises", "cruise", "cruise line", "caribbean cruise"),
	anyOf("Travel & Vacations", "Theme Parks & Attractions",
		"theme park", "disneyland", "disney world", "universal studios",
		"six flags", "seaworld"),

	// Flowers & Gifts
	anyOf("Flowers & Gifts", "Gift Cards", "gift card", "e-gift", "egift"),
	anyOf("Flowers & Gifts", "Greeting Cards & Invitations",
		"greeting card", "invitation", "birthday card"),

	// Restaurants
	anyOf("Restaurants", "Pizza", "pizza hut", "domino's", "little caesars", "papa johns"),
	anyOf("Restaurants", "Delivery & Take Out",
		"uber eats", "doordash", "grubhub", "postmates"),
	anyOf("Restaurants", "Fast Food",
		"mcdonald's", "burger king", "wendy's", "taco bell", "kfc", "popeyes",
		"fast food", "chick-fil-a", "subway", "chipotle"),

	// Office & School Supplies
	anyOf("Office & School Supplies", "Photo Printing",
		"photo print", "photo service", "canvas print", "photo book",
		"walgreens photo"),
	anyOf("Office & School Supplies", "Paper",
		"printer paper", "copy paper", "notebook paper", "cardstock"),
	anyOf("Office & School Supplies", "Pencils, Pens & Markers",
		"pen", "pencil", "marker", "highlighter", "crayons", "colored pencils"),
	anyOf("Office & School Supplies", "Office Supplies",
		"binder", "folder", "notebook", "planner", "calendar", "sticky notes"),
	anyOf("Office & School Supplies", "Tape & Packaging",
		"tape", "packing tape", "scotch tape", "duct tape", "packaging supplies"),

	// Pets
	anyOf("Pets", "Dog Food & Treats", "dog food", "dog treats", "puppy food"),
	anyOf("Pets", "Cat Food & Treats", "cat food", "cat treats", "kitten food"),
	anyOf("Pets", "Pet Toys", "pet toy", "dog toy", "cat toy"),
	anyOf("Pets", "Pet Supplies",
		"pet bed", "dog bed", "cat bed", "pet carrier", "leash", "collar"),

	// Books & Magazines
	anyOf("Books & Magazines", "eBooks", "ebook", "kindle book", "digital book"),
	anyOf("Books & Magazines", "Books",
		"hardcover", "paperback", "novel", "fiction", "non-fiction", "cookbook"),
	anyOf("Books & Magazines", "Magazines", "magazine subscription", "magazine"),
}
