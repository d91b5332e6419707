package service

import (
	"strconv"

	"github.com/vortexgear/storefront/internal/models"
)

const unsplash = "https://images.unsplash.com/"

func image(id string) string {
	return unsplash + id + "?auto=format&fit=crop&w=800&q=80"
}

// categoryTemplate drives generation of one category's products.
type categoryTemplate struct {
	category    models.Category
	count       int
	minPrice    int
	priceSpread int
	nouns       []string
	specs       func(i int) []string
	description string
	images      []string
}

var namePrefixes = []string{"New Arrival", "Hot Sale", "2024 Upgraded", "Professional", "Luxury", "Custom", "High Quality", "Top Rated"}

var nameAdjectives = []string{
	"RGB Backlit", "Wireless", "Ergonomic", "Waterproof", "Noise Cancelling", "Bluetooth 5.0",
	"4K Resolution", "Mechanical", "Silent Click", "Rechargeable", "Ultra-Slim", "Pro-Grade",
}

var nameSuffixes = []string{"for PC Laptop", "for Esports", "for Streamers", "USB Interface", "with Mic", "Gift for Gamers"}

func fixedSpecs(specs ...string) func(int) []string {
	return func(int) []string {
		return append([]string(nil), specs...)
	}
}

// catalogTemplates is ordered; product ids are numbered across it.
var catalogTemplates = []categoryTemplate{
	{
		category:    models.CategoryMouse,
		count:       10,
		minPrice:    15,
		priceSpread: 60,
		nouns:       []string{"Optical Mouse", "Gaming Mouse", "Honeycomb Shell Mouse", "Vertical Mouse", "Macro Programmable Mouse"},
		specs: func(i int) []string {
			return []string{strconv.Itoa(1200+i*1200) + " DPI", "RGB Breath Light", "Ergonomic Design"}
		},
		description: "High precision optical sensor suitable for competitive gaming and office work. Features customized RGB lighting zones.",
		images: []string{
			image("photo-1615663245857-ac93bb7c39e7"), image("photo-1527814050087-3793815479db"),
			image("photo-1629367494173-c78a56567877"), image("photo-1605773527852-c546a8584ea3"),
			image("photo-1603525253816-56a8f154fb4a"), image("photo-1610484795034-73895eb48833"),
			image("photo-1607677686475-ad54538dce26"), image("photo-1586349906319-5a1262d19113"),
			image("photo-1594911850125-9c5cdabb0d99"), image("photo-1613141411244-0e42a9f5d345"),
		},
	},
	{
		category:    models.CategoryKeyboard,
		count:       10,
		minPrice:    35,
		priceSpread: 120,
		nouns:       []string{"Mechanical Keyboard", "Gaming Keypad", "Membrane Keyboard", "Typewriter Style Keyboard", "60% Compact Keyboard"},
		specs:       fixedSpecs("Mechanical Axis", "Double-shot Keycaps", "Water Resistant"),
		description: "Durable mechanical switches providing tactile feedback. Compact design saves desk space for mouse movement.",
		images: []string{
			image("photo-1595225476474-87563907a212"), image("photo-1587829741301-dc798b91a603"),
			image("photo-1618366712010-f4ae9c647dcb"), image("photo-1626218174397-5780d006be91"),
			image("photo-1511467687858-23d96c32e4ae"), image("photo-1566598484642-d204db847eb0"),
			image("photo-1568019853965-c96765798034"), image("photo-1625948515291-696131d62b3d"),
			image("photo-1655890782352-782875152864"), image("photo-1544652478-6653e09f1826"),
		},
	},
	{
		category:    models.CategoryHeadset,
		count:       8,
		minPrice:    25,
		priceSpread: 80,
		nouns:       []string{"Surround Sound Headset", "Studio Headphones", "In-Ear Monitors", "Bass Gaming Headset"},
		specs:       fixedSpecs("7.1 Surround", "Noise Cancelling Mic", "Memory Foam"),
		description: "Immersive audio experience with deep bass and crystal clear highs. Comfortable for long gaming sessions.",
		images: []string{
			image("photo-1599669454699-248893623440"), image("photo-1583573636246-18cb2246697f"),
			image("photo-1590658268037-6bf12165a8df"), image("photo-1612444530582-fc66183b16f7"),
			image("photo-1546435770-a3e426bf472b"), image("photo-1487215078519-e21cc028cb29"),
			image("photo-1524678606370-a47ad25cb82a"), image("photo-1610397648930-477b8c7f0943"),
		},
	},
	{
		category:    models.CategoryMonitor,
		count:       6,
		minPrice:    120,
		priceSpread: 350,
		nouns:       []string{"Curved Monitor", "IPS Gaming Display", "Portable Screen", "144Hz Monitor"},
		specs:       fixedSpecs("165Hz Refresh Rate", "1ms Response", "Flicker-Free"),
		description: "Experience smooth gameplay with high refresh rate technology. Borderless design for multi-monitor setups.",
		images: []string{
			image("photo-1547394765-185e1e68f34e"), image("photo-1527434065445-5120678ebc66"),
			image("photo-1551698618-1dfe5d97d256"), image("photo-1593640408182-31c70c8268f5"),
			image("photo-1585792180666-f7347c490ee2"), image("photo-1552831388-6a0b3575b32a"),
		},
	},
	{
		category:    models.CategoryChair,
		count:       6,
		minPrice:    99,
		priceSpread: 250,
		nouns:       []string{"Racing Gaming Chair", "Ergonomic Office Chair", "Reclining Desk Chair", "Mesh Computer Chair"},
		specs:       fixedSpecs("Lumbar Support", "150° Recline", "Heavy Duty Base"),
		description: "Racing style ergonomics designed to support your posture during marathon gaming sessions.",
		images: []string{
			image("photo-1598550476439-6847785fcea6"), image("photo-1505843490538-5133c6c7d0e1"),
			image("photo-1616428469345-534d0b04b61c"), image("photo-1617364852223-75f57e78dc96"),
			image("photo-1688578736340-92807f43db48"), image("photo-1606744837616-56c9a5c6a6eb"),
		},
	},
	{
		category:    models.CategoryController,
		count:       5,
		minPrice:    20,
		priceSpread: 70,
		nouns:       []string{"Wireless Gamepad", "Mobile Controller", "Joystick Trigger", "Racing Wheel"},
		specs:       fixedSpecs("Wireless 2.4G", "Vibration Motors", "Phone Clip"),
		description: "Multi-platform compatibility including PC, Console, and Android. Precise analog sticks and responsive triggers.",
		images: []string{
			image("photo-1592840496694-26d035b52b48"), image("photo-1600080972464-8e5f35f63d88"),
			image("photo-1593118247619-e2d6f056869e"), image("photo-1507457379470-08b800bebc67"),
			image("photo-1629429408209-1f912961dbd8"), image("photo-1599582522066-6b2ae349386d"),
		},
	},
	{
		category:    models.CategoryStreaming,
		count:       5,
		minPrice:    30,
		priceSpread: 100,
		nouns:       []string{"Condenser Microphone", "Ring Light Kit", "Capture Card 1080p", "HD Webcam"},
		specs:       fixedSpecs("USB Plug & Play", "Cardioid Pattern", "Adjustable Stand"),
		description: "Professional grade recording equipment for streaming, podcasting, and voice overs.",
		images: []string{
			image("photo-1525547719571-a2d4ac8945e2"), image("photo-1617781358042-45e0d4734947"),
			image("photo-1526374965328-7f61d4dc18c5"), image("photo-1478737270239-2f02b77ac6d5"),
			image("photo-1520529986492-5e48b1e60052"), image("photo-1516280440614-6697288d5d38"),
		},
	},
}

var categoryInfos = []models.CategoryInfo{
	{ID: models.CategoryMouse, Label: "Mice", Tagline: "Precision Aiming Tools", Image: image("photo-1615663245857-ac93bb7c39e7")},
	{ID: models.CategoryKeyboard, Label: "Keyboards", Tagline: "Mechanical Domination", Image: image("photo-1595225476474-87563907a212")},
	{ID: models.CategoryHeadset, Label: "Audio", Tagline: "Immersive Soundscapes", Image: image("photo-1618366712010-f4ae9c647dcb")},
	{ID: models.CategoryMonitor, Label: "Displays", Tagline: "High Refresh Rates", Image: image("photo-1547394765-185e1e68f34e")},
	{ID: models.CategoryChair, Label: "Chairs", Tagline: "Ergonomic Support", Image: image("photo-1598550476439-6847785fcea6")},
	{ID: models.CategoryController, Label: "Controllers", Tagline: "Console Control", Image: image("photo-1592840496694-26d035b52b48")},
	{ID: models.CategoryStreaming, Label: "Streaming", Tagline: "Broadcast Quality", Image: image("photo-1525547719571-a2d4ac8945e2")},
}
