package catalog

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SeedProducts returns the static Nova catalog.
func SeedProducts() []*Product {
	return []*Product{
		{
			ID:       1,
			Name:     "Quantum Neural Headset",
			Price:    price("299.99"),
			Images:   []string{"/products/quantum-headphones.png"},
			Category: "Wearables",
			Colors: []ColorOption{
				{ID: "black", Name: "Obsidian", Value: "#000000"},
				{ID: "silver", Name: "Chrome", Value: "#C0C0C0"},
			},
			Sizes:       []string{"One Size"},
			Rating:      4.8,
			ReviewCount: 42,
			IsNew:       true,
			Description: "Advanced neural interface for immersive experiences",
			Tags:        []string{"neural", "headset", "vr", "ar", "brain", "interface", "immersive"},
		},
		{
			ID:    2,
			Name:  "HoloLens Display Glasses",
			Price: price("459.99"),
			Images: []string{
				"/products/hololens-display-glasses.png",
				"/products/hololens-display-glasses-front.png",
				"/products/hololens-display-glasses-front-above.png",
			},
			Category: "AR/VR",
			Colors: []ColorOption{
				{ID: "blue", Name: "Cobalt", Value: "#0047AB"},
				{ID: "black", Name: "Stealth", Value: "#000000"},
			},
			Sizes:       []string{"S", "M", "L"},
			Rating:      5,
			ReviewCount: 28,
			IsNew:       true,
			Description: "Augmented reality glasses with holographic display",
			Tags:        []string{"ar", "glasses", "holographic", "display", "augmented reality"},
		},
		{
			ID:       3,
			Name:     "Nebula Smart Home Hub",
			Price:    price("149.99"),
			Images:   []string{"/products/nebula-smart-home-hub.png"},
			Category: "Smart Home",
			Colors: []ColorOption{
				{ID: "gray", Name: "Lunar", Value: "#808080"},
				{ID: "white", Name: "Arctic", Value: "#FFFFFF"},
			},
			Sizes:       []string{"One Size"},
			Rating:      4.5,
			ReviewCount: 36,
			Description: "Central hub for controlling all your smart home devices",
			Tags:        []string{"smart home", "hub", "iot", "control", "automation"},
		},
		{
			ID:       4,
			Name:     "Fusion Power Bank",
			Price:    price("89.99"),
			Images:   []string{"/products/fusion-power-bank.png"},
			Category: "Accessories",
			Colors: []ColorOption{
				{ID: "purple", Name: "Ultraviolet", Value: "#800080"},
				{ID: "black", Name: "Carbon", Value: "#000000"},
			},
			Sizes:       []string{"One Size"},
			Rating:      4.7,
			ReviewCount: 18,
			IsNew:       true,
			Description: "High-capacity power bank with wireless charging",
			Tags:        []string{"power bank", "battery", "charging", "wireless", "portable"},
		},
		{
			ID:       5,
			Name:     "Pulse Fitness Tracker",
			Price:    price("129.99"),
			Images:   []string{"/products/pulse-fitness-tracker.png"},
			Category: "Wearables",
			Colors: []ColorOption{
				{ID: "cyan", Name: "Aqua", Value: "#00FFFF"},
				{ID: "black", Name: "Onyx", Value: "#000000"},
			},
			Sizes:       []string{"S", "M", "L"},
			Rating:      4.4,
			ReviewCount: 24,
			Description: "Advanced fitness tracker with health monitoring",
			Tags:        []string{"fitness", "tracker", "health", "monitoring", "wearable"},
		},
		{
			ID:       6,
			Name:     "Echo Wireless Earbuds",
			Price:    price("179.99"),
			Images:   []string{"/products/echo-wireless-earbuss.png"},
			Category: "Audio",
			Colors: []ColorOption{
				{ID: "green", Name: "Emerald", Value: "#50C878"},
				{ID: "black", Name: "Phantom", Value: "#000000"},
			},
			Sizes:       []string{"One Size"},
			Rating:      4.9,
			ReviewCount: 32,
			IsNew:       true,
			Description: "Premium wireless earbuds with noise cancellation",
			Tags:        []string{"earbuds", "wireless", "audio", "noise cancellation", "sound"},
		},
		{
			ID:       7,
			Name:     "Spectrum RGB Keyboard",
			Price:    price("149.99"),
			Images:   []string{"/products/spectrum-rgb-keyboard.png"},
			Category: "Accessories",
			Colors: []ColorOption{
				{ID: "rgb", Name: "Rainbow", Value: "linear-gradient(90deg, #ff0080, #7928ca, #007cf0)"},
				{ID: "black", Name: "Dark", Value: "#000000"},
			},
			Sizes:       []string{"One Size"},
			Rating:      4.6,
			ReviewCount: 21,
			Description: "Mechanical keyboard with customizable RGB lighting",
			Tags:        []string{"keyboard", "mechanical", "rgb", "gaming", "typing"},
		},
		{
			ID:       8,
			Name:     "Vortex Gaming Mouse",
			Price:    price("99.99"),
			Images:   []string{"/products/vortex-gaming-mouse.png"},
			Category: "Accessories",
			Colors: []ColorOption{
				{ID: "black", Name: "Shadow", Value: "#000000"},
				{ID: "red", Name: "Inferno", Value: "#FF0000"},
			},
			Sizes:       []string{"One Size"},
			Rating:      4.8,
			ReviewCount: 19,
			Description: "High-precision gaming mouse with programmable buttons",
			Tags:        []string{"mouse", "gaming", "precision", "programmable"},
		},
		{
			ID:       9,
			Name:     "Photon Camera Drone",
			Price:    price("799.99"),
			Images:   []string{"/products/photon-camera-drone.png"},
			Category: "Drones",
			Colors: []ColorOption{
				{ID: "white", Name: "Arctic", Value: "#FFFFFF"},
				{ID: "black", Name: "Night", Value: "#000000"},
			},
			Sizes:       []string{"One Size"},
			Rating:      4.7,
			ReviewCount: 15,
			Description: "4K camera drone with autonomous flight modes",
			Tags:        []string{"drone", "camera", "aerial", "4k", "flight"},
		},
		{
			ID:       10,
			Name:     "Gravity Wireless Charger",
			Price:    price("49.99"),
			Images:   []string{"/products/gravity-wireless-charger.png"},
			Category: "Accessories",
			Colors: []ColorOption{
				{ID: "white", Name: "Pearl", Value: "#FFFFFF"},
				{ID: "black", Name: "Obsidian", Value: "#000000"},
			},
			Sizes:       []string{"One Size"},
			Rating:      4.5,
			ReviewCount: 13,
			Description: "Fast wireless charging pad for all devices",
			Tags:        []string{"charger", "wireless", "charging", "pad"},
		},
		{
			ID:       11,
			Name:     "Nexus Smartphone",
			Price:    price("999.99"),
			Images:   []string{"/products/nexus-smartphone.png"},
			Category: "Smartphones",
			Colors: []ColorOption{
				{ID: "blue", Name: "Ocean", Value: "#007cf0"},
				{ID: "black", Name: "Midnight", Value: "#000000"},
			},
			Sizes:       []string{"One Size"},
			Rating:      4.9,
			ReviewCount: 45,
			Description: "Next-generation smartphone with AI capabilities",
			Tags:        []string{"smartphone", "mobile", "ai", "camera", "communication"},
		},
		{
			ID:       12,
			Name:     "Aura Smart Lighting",
			Price:    price("69.99"),
			Images:   []string{"/products/aura-smart-ighting.png"},
			Category: "Smart Home",
			Colors: []ColorOption{
				{ID: "rgb", Name: "Spectrum", Value: "linear-gradient(90deg, #ff0080, #7928ca, #007cf0)"},
				{ID: "white", Name: "Classic", Value: "#FFFFFF"},
			},
			Sizes:       []string{"One Size"},
			Rating:      4.3,
			ReviewCount: 11,
			Description: "Customizable smart lighting system for your home",
			Tags:        []string{"lighting", "smart home", "rgb", "customizable", "ambiance"},
		},
	}
}
