package searchiq

// termGroup is a canonical term with its multilingual synonyms and
// regional spellings.
type termGroup struct {
	base     string
	synonyms []string
}

// expansionGroups is the synonym dictionary used for query expansion and
// related-product lookups. Unlike the normalizer's synonymGroups, matching
// here is substring-contains, not whole-word; the two behaviors are
// deliberately distinct. Declaration order is the iteration order.
var expansionGroups = []termGroup{
	// Floor types
	{"laminate", []string{"laminaat", "laminat", "laminated flooring", "laminate floor", "stratifié"}},
	{"vinyl", []string{"pvc", "luxury vinyl", "lvt", "vinyl plank", "vinyl planks", "vinyle"}},
	{"parquet", []string{"parket", "parkett", "hardwood", "wood flooring", "houten vloer"}},
	{"wood", []string{"wooden", "timber", "hout", "holz", "bois", "legno", "madera"}},
	{"tile", []string{"tiles", "tegel", "tegels", "fliese", "fliesen", "carrelage", "piastrelle", "azulejo"}},
	{"stone", []string{"steen", "stein", "natural stone", "marble", "granite", "pierre", "pietra", "piedra"}},

	// Products & care
	{"cleaner", []string{"cleaning", "clean", "reiniger", "reinigung", "schoonmaakmiddel", "schoonmaak", "nettoyant", "detergente", "limpiador"}},
	{"sealer", []string{"sealing", "seal", "verzegeling", "versiegelung", "scellant", "sigillante", "sellador", "protection"}},
	{"oil", []string{"olie", "öl", "wood oil", "floor oil", "huile", "olio", "aceite"}},
	{"wax", []string{"was", "wachs", "floor wax", "cire", "cera"}},
	{"polish", []string{"polisher", "polijsten", "polieren", "polir", "lucidare", "pulir"}},
	{"adhesive", []string{"glue", "lijm", "kleber", "colle", "colla", "pegamento", "bonding"}},
	{"underlay", []string{"underlayment", "ondervloer", "unterlage", "sous-couche", "sottofondi"}},
	{"varnish", []string{"vernis", "lak", "lack", "vernice", "barniz"}},

	// Characteristics
	{"waterproof", []string{"water resistant", "waterdicht", "wasserdicht", "water proof", "étanche", "impermeabile", "impermeable"}},
	{"scratch resistant", []string{"scratch proof", "krasbestendig", "kratzfest", "résistant aux rayures", "antigraffio", "resistente a los arañazos"}},
	{"easy to install", []string{"diy", "click system", "gemakkelijk te leggen", "einfach zu verlegen", "facile à poser", "facile da installare", "fácil de instalar"}},
	{"durable", []string{"strong", "heavy duty", "duurzaam", "langlebig", "robust", "durable", "durevole", "duradero"}},
	{"eco friendly", []string{"ecological", "sustainable", "milieuvriendelijk", "umweltfreundlich", "écologique", "ecologico", "ecológico"}},

	// Brands
	{"bona", []string{"bona floor care", "bona products", "bona vloeronderhoud"}},
	{"woca", []string{"woca denmark", "woca oil", "woca olie"}},
	{"lithofin", []string{"lithofin stone care", "lithofin natuursteen"}},
	{"hmk", []string{"hmk moeller", "hmk stone care"}},
	{"loba", []string{"loba wakol", "loba vloeren"}},
	{"quick-step", []string{"quick step", "quickstep"}},
	{"blue dolphin", []string{"bluedolphin", "blue dolfijn"}},

	// Colors and finishes
	{"oak", []string{"eik", "eiche", "oak wood", "chêne", "quercia", "roble"}},
	{"walnut", []string{"noot", "walnuss", "walnut wood", "noyer", "noce", "nogal"}},
	{"white", []string{"wit", "weiss", "whitewashed", "blanc", "bianco", "blanco"}},
	{"grey", []string{"gray", "grijs", "grau", "gris", "grigio"}},
	{"brown", []string{"bruin", "braun", "brun", "marrone", "marrón"}},
	{"black", []string{"zwart", "schwarz", "noir", "nero", "negro"}},
	{"natural", []string{"naturel", "natur", "natural finish", "naturale", "natural"}},
	{"matt", []string{"matte", "mat", "matt finish"}},
	{"gloss", []string{"glossy", "high gloss", "glanzend", "glänzend", "brillant", "lucido", "brillante"}},
	{"beige", []string{"beige", "crème", "crema"}},

	// Rooms
	{"kitchen", []string{"keuken", "küche", "cuisine", "cucina", "cocina"}},
	{"bathroom", []string{"badkamer", "bad", "salle de bain", "bagno", "baño", "douche", "wc"}},
	{"living room", []string{"woonkamer", "salon", "wohnzimmer", "soggiorno", "sala de estar"}},
	{"bedroom", []string{"slaapkamer", "schlafzimmer", "chambre", "camera da letto", "dormitorio"}},
	{"hallway", []string{"gang", "hal", "flur", "couloir", "corridoio", "pasillo", "entree"}},

	// Actions
	{"install", []string{"installation", "leggen", "verlegen", "installeren", "poser", "installare", "instalar"}},
	{"maintain", []string{"maintenance", "onderhoud", "onderhouden", "pflege", "pflegen", "entretien", "manutenzione", "mantenimiento"}},
	{"clean", []string{"cleaning", "schoonmaken", "reinigen", "nettoyer", "pulire", "limpiar"}},
	{"protect", []string{"protection", "beschermen", "schützen", "protéger", "proteggere", "proteger"}},
	{"restore", []string{"restoration", "herstellen", "wiederherstellen", "restaurer", "restaurare", "restaurar"}},
}

// expansionByBase indexes expansionGroups by canonical term for
// related-product lookups.
var expansionByBase = func() map[string][]string {
	m := make(map[string][]string, len(expansionGroups))
	for _, g := range expansionGroups {
		m[g.base] = g.synonyms
	}
	return m
}()

// problemKeywords indicate problem-solving intent: repair, maintenance,
// and damage vocabulary across languages.
var problemKeywords = []string{
	"remove", "fix", "repair", "clean", "maintain", "protect", "prevent",
	"verwijder", "herstel", "repareer", "schoon", "onderhoud", "bescherm",
	"entfernen", "reparieren", "reinigen", "pflegen", "schützen",
	"stain", "scratch", "damage", "crack", "squeak", "water damage",
	"vlek", "kras", "schade", "barst", "piepen", "waterschade",
}

// roomTypes map a canonical room name to its multilingual keywords.
// The first matching room wins.
var roomTypes = []termGroup{
	{"kitchen", []string{"keuken", "küche", "cuisine", "cucina"}},
	{"bathroom", []string{"badkamer", "bad", "salle de bain", "bagno"}},
	{"living", []string{"woonkamer", "wohnzimmer", "salon", "soggiorno", "living room"}},
	{"bedroom", []string{"slaapkamer", "schlafzimmer", "chambre", "camera da letto"}},
	{"hallway", []string{"gang", "flur", "couloir", "corridoio", "entrance"}},
	{"outdoor", []string{"buiten", "außen", "extérieur", "esterno", "terrace", "balcony"}},
}

// usageCharacteristics map a canonical characteristic to its keywords.
// All matching characteristics are reported.
var usageCharacteristics = []termGroup{
	{"pet-friendly", []string{"pet safe", "huisdier", "haustier", "animal", "dog", "cat"}},
	{"underfloor heating", []string{"vloerverwarming", "fußbodenheizung", "chauffage sol", "ufh"}},
	{"high traffic", []string{"commercial", "heavy duty", "zwaar gebruik", "stark beansprucht"}},
	{"moisture resistant", []string{"waterproof", "water resistant", "vochtbestendig", "feuchtigkeitsbeständig"}},
}

// knownBrands are the floor-care and flooring brands recognized in
// queries.
var knownBrands = []string{
	"lithofin", "hmk", "lecol", "woca", "bona", "loba",
	"floorservice", "blue dolphin", "dr. schutz", "blanchon",
	"quick-step", "pergo", "berry alloc", "parador", "haro",
	"osmo", "treatex", "rubio monocoat", "pallmann",
}

// colorVariants map a canonical color to its regional spellings for query
// detection.
var colorVariants = []termGroup{
	{"oak", []string{"eik", "eiche"}},
	{"walnut", []string{"noot", "walnuss"}},
	{"white", []string{"wit", "weiss"}},
	{"grey", []string{"grijs", "grau", "gray"}},
	{"brown", []string{"bruin", "braun"}},
	{"black", []string{"zwart", "schwarz"}},
	{"natural", []string{"naturel", "natur"}},
}

// relatedColorVariants is the wider color table used when deriving related
// search terms from a product title.
var relatedColorVariants = []termGroup{
	{"oak", []string{"eik", "eiche", "chêne"}},
	{"walnut", []string{"noot", "walnuss", "noyer"}},
	{"white", []string{"wit", "weiss", "blanc", "bianco"}},
	{"grey", []string{"grijs", "grau", "gris", "grigio", "gray"}},
	{"brown", []string{"bruin", "braun", "brun", "marrone"}},
	{"black", []string{"zwart", "schwarz", "noir", "nero"}},
	{"natural", []string{"naturel", "natur", "naturale"}},
	{"beige", []string{"beige"}},
	{"red", []string{"rood", "rot", "rouge", "rosso"}},
}
