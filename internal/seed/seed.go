package seed

import (
	"github.com/Dreadpool/TacticalGearForge/internal/domain"
	catalogrepo "github.com/Dreadpool/TacticalGearForge/internal/repository/catalog"
)

// Apply loads the fixed storefront catalog. It runs exactly once at process
// start, before the server accepts traffic, so product ids are stable 1..n
// in the order below. Returns the number of products seeded.
func Apply(repo catalogrepo.Repository) int {
	for _, p := range products {
		repo.Create(p)
	}
	return len(products)
}

var products = []domain.Product{
	{
		Name:        "TRUE NORTH CONCEPTS MODULAR HOLSTER ADAPTER",
		Model:       "MHA-001-BLK",
		Description: "Component of the official GBRS Group belt build-out for mounting a holster. Eliminates unwanted movement, flex, and sliding common to factory polymer belt adaptors by clamping the belt between aluminum adapter and aluminum belt bars.",
		Price:       "84.99",
		Category:    "PROTECTION",
		ImageURL:    "/api/assets/MC-2048x2048.jpg",
		AdditionalImages: []string{
			"/api/assets/MC-2048x2048.jpg",
			"/api/assets/MHA-Mounted-300x300.webp",
			"/api/assets/MHA-Mounted-2-300x300.webp",
			"/api/assets/MHA-Mounted-3-300x300.webp",
		},
		InStock: true,
		Specifications: map[string]string{
			"material":             "DFARS grade 6061-T6 aluminum",
			"thickness":            "0.190″ thick domestically produced aluminum",
			"finish":               "Type 3 MIL-SPEC hard coat anodized",
			"weight":               "2 oz heavier than UBL",
			"cantAdjustment":       "20° total range (10° forward + 10° negative)",
			"heightAdjustment":     "Three mounting points set 1/2″ apart",
			"beltCompatibility":    "Up to 2.25″ wide belts",
			"mounting":             "MOLLE/PALS, standard belt, Tek-Lok™, MALICE clips",
			"holsterCompatibility": "Safariland 3-hole pattern, QLS/MLS/ELS, G-Code SOC/OSL/XST",
			"endorsement":          "GBRS Group Official Component",
			"warranty":             "Lifetime replacement guarantee",
			"berryCompliant":       "true",
		},
	},
	{
		Name:        "HALEY STRATEGIC D3CRM MICRO CHEST RIG",
		Model:       "D3CRM-BLK",
		Description: "Created by Travis Haley, veteran Force Recon Marine with 15 years of dedicated real-world experience. The D3CRM has earned operational experience with deployments to every branch of the U.S. military including broad usage with U.S./NATO special operations forces, federal, and local law enforcement agencies.",
		Price:       "189.00",
		Category:    "LOAD_BEARING",
		ImageURL:    "/api/assets/D3CRM-main.png",
		AdditionalImages: []string{
			"/api/assets/D3CRM-main.png",
			"/api/assets/D3CRM-view-2.png",
			"/api/assets/D3CRM-view-3.png",
			"/api/assets/D3CRM-view-4.png",
		},
		InStock: true,
		Specifications: map[string]string{
			"creator":    "Travis Haley - Force Recon Marine (15 years)",
			"experience": "Deployments to every branch of U.S. military",
			"users":      "U.S./NATO special operations forces, federal and local law enforcement",
			"design":     "Adaptive to any mission and every environment",
			"capacity":   "Triple magazine front, admin pouches",
			"mounting":   "Modular attachment system",
			"material":   "Made in USA, Berry Compliant",
			"sourceUrl":  "https://haleystrategic.com/",
		},
	},
	{
		Name:        "AIMPOINT MICRO T-2 RED DOT SIGHT",
		Model:       "T-2-2MOA",
		Description: "Pat McNamara, former Delta Force: 'For optics, he prefers Aimpoint in the T-2 series, though the Aimpoint Comp M5 is also getting great reviews.' Used by U.S. Armed Forces elite assault teams and Special Forces all over the world, regarded as the standard optical sight in most NATO countries.",
		Price:       "849.00",
		Category:    "OPTICS",
		ImageURL:    "/api/assets/T2-main.jpg",
		AdditionalImages: []string{
			"/api/assets/T2-main.jpg",
			"/api/assets/T2-view-2.jpg",
			"/api/assets/T2-view-3.jpg",
			"/api/assets/T2-view-4.jpg",
		},
		InStock: true,
		Specifications: map[string]string{
			"endorser":    "Pat McNamara - Former Delta Force",
			"quote":       "For optics, he prefers Aimpoint in the T-2 series",
			"users":       "U.S. Armed Forces elite assault teams, Force Recon, MARSOC, Delta Force, Marine Recon, Green Berets",
			"batteryLife": "5+ years constant on",
			"reticle":     "2 MOA red dot",
			"durability":  "Submersible to 45 meters",
			"mounting":    "Micro T-2 footprint",
			"status":      "Standard optical sight in most NATO countries",
			"sourceUrl":   "https://americanshootingjournal.com/training-with-ex-delta-force-legend-pat-mcnamara/",
		},
	},
	{
		Name:        "SUREFIRE M600DF SCOUT LIGHT DUAL FUEL",
		Model:       "M600DF-BK",
		Description: "Pat McNamara, former Delta Force: 'prefers mounting tactical lights at the 3 o'clock position using a Surefire scout light.' Mike Glover, Green Beret: 'For illumination, Glover uses the Surefire...because it's slim and easy to carry, rechargeable, and has multiple output intensity settings.'",
		Price:       "359.00",
		Category:    "TOOLS",
		ImageURL:    "/api/assets/M600DF-main.jpg",
		AdditionalImages: []string{
			"/api/assets/M600DF-main.jpg",
			"/api/assets/M600DF-view-2.jpg",
			"/api/assets/M600DF-view-3.jpg",
			"/api/assets/M600DF-view-4.jpg",
		},
		InStock: true,
		Specifications: map[string]string{
			"endorsers":     "Pat McNamara (Delta Force), Mike Glover (Green Beret)",
			"mcNamaraQuote": "prefers mounting at the 3 o'clock position using a Surefire scout light",
			"gloverQuote":   "uses the Surefire...because it's slim and easy to carry, rechargeable, and has multiple output intensity settings",
			"output":        "1,500 lumens",
			"fuelType":      "Dual fuel - CR123A or 18650 rechargeable",
			"runtime":       "1.25 hours high / 40 hours low",
			"construction":  "Mil-Spec hard anodized aluminum",
			"mounting":      "MIL-STD-1913 Picatinny rail mount",
			"sourceUrl":     "https://americanshootingjournal.com/training-with-ex-delta-force-legend-pat-mcnamara/",
		},
	},
	{
		Name:        "GBRS GROUP ASSAULTER BELT SYSTEM V3",
		Model:       "ABS-V3-MC",
		Description: "Designed by GBRS Group, a Veteran-Owned, Tier 1 Training organization composed exclusively of Special Mission Unit Veterans. The V3 utilizes a 2-layer outer belt to create a lightweight, flexible yet rigid platform. Trusted by tier-one operators for high-stakes missions and real-world operational durability.",
		Price:       "189.00",
		Category:    "LOAD_BEARING",
		ImageURL:    "/api/assets/GBRS-Belt-main.jpg",
		AdditionalImages: []string{
			"/api/assets/GBRS-Belt-main.jpg",
			"/api/assets/GBRS-Belt-view-2.jpg",
			"/api/assets/GBRS-Belt-view-3.jpg",
			"/api/assets/GBRS-Belt-buckle.jpg",
		},
		InStock: true,
		Specifications: map[string]string{
			"creators":     "GBRS Group - Special Mission Unit Veterans",
			"construction": "Type 13, 1-23/32″ webbing rated at 7,000 lbs tensile strength",
			"material":     "Laser-cut PALS-compatible thermo-polymer laminate",
			"buckle":       "1.75″ AustriAlpin Cobra® with integrated D-ring",
			"innerBelt":    "1.5″ scuba webbing for IWB holster support",
			"weight":       "Medium: 13.8 oz, Small: 12.9 oz",
			"molle":        "Medium: 20 MOLLE spaces, Small: 17 MOLLE spaces",
			"endorsement":  "GBRS Group Official Product - Tier 1 Operators",
			"usage":        "High-stakes missions, CQB drills, fast-roping operations",
			"sourceUrl":    "https://gbrsgroupgear.com/products/gbrs-group-assaulter-belt-system-v3",
		},
	},
	{
		Name:        "ESSTAC KYWI 5.56 MAGAZINE POUCH SHORTY",
		Model:       "5KY56-S-MC",
		Description: "Esstac KYWI pouches have been personally used by operators in Kenya, Georgia, The UK and Afghanistan. British Army sharpshooter: 'hands down they've been the best pouches for the job!' Combines traditional nylon durability with modern Kydex retention. Legendary in military and special operations communities.",
		Price:       "32.00",
		Category:    "LOAD_BEARING",
		ImageURL:    "/api/assets/Esstac-5.56-main.jpg",
		AdditionalImages: []string{
			"/api/assets/Esstac-5.56-main.jpg",
			"/api/assets/Esstac-5.56-side.jpg",
			"/api/assets/Esstac-5.56-mounted.jpg",
			"/api/assets/Esstac-5.56-detail.jpg",
		},
		InStock: true,
		Specifications: map[string]string{
			"endorser":      "British Army Sharpshooter, Multiple Special Forces Units",
			"quote":         "hands down they've been the best pouches for the job!",
			"users":         "Operators in Kenya, Georgia, The UK and Afghanistan",
			"construction":  "500D nylon exterior with Kydex insert (KYWI design)",
			"retention":     "Solid retention with satisfying 'click' to hold magazines",
			"compatibility": "Standard 5.56/.223 magazines",
			"mounting":      "MOLLE/PALS compatible",
			"noise":         "Soft nylon exterior to keep noise down",
			"durability":    "Proven in combat environments over 2+ years",
			"sourceUrl":     "https://esstac.com/5-56/",
		},
	},
	{
		Name:        "SOILEATER BELT MOUNTED TOURNIQUET HOLDER V2",
		Model:       "BMTH-V2-MC",
		Description: "Designed by a law enforcement professional with SWAT experience, certified in explosive breaching and advanced firearms. The BMTH V2 was re-designed for the modern professional, utilizing wasted space on your combat belt for ambidextrous tourniquet access without additional steps in high-stress situations.",
		Price:       "45.00",
		Category:    "TOOLS",
		ImageURL:    "/api/assets/Soileater-TQ-main.jpg",
		AdditionalImages: []string{
			"/api/assets/Soileater-TQ-main.jpg",
			"/api/assets/Soileater-TQ-mounted.jpg",
			"/api/assets/Soileater-TQ-detail.jpg",
			"/api/assets/Soileater-TQ-access.jpg",
		},
		InStock: true,
		Specifications: map[string]string{
			"creator":        "Law Enforcement Professional - SWAT Assaulter",
			"design":         "Ambidextrous access without snaps/velcro/buttons",
			"compatibility":  "CAT or SOFTT-W tourniquets",
			"access":         "Simply pull tourniquet towards centerline with either hand",
			"mounting":       "Loop under belt with hook/MOLLE outer belt",
			"additional":     "Includes marker, decompression needle or chemlight holder",
			"belts":          "Does not work with GBRS or Eagle Industries Belts (need reversed version)",
			"enhancement":    "Adds more velcro real-estate for improved belt stability",
			"certifications": "Creator certified in explosive breaching and advanced firearms",
			"sourceUrl":      "https://www.soileater.com/product-page/bmth-v2",
		},
	},
}
