package moodlex

// Empirically derived mean intensity adjustments for booster words and for
// ALL-CAPS emphasis, per the original VADER paper.
const (
	boostIncr = 0.293
	boostDecr = -0.293
	capsIncr  = 0.733
	negScalar = -0.74
)

// ValenceLexicon returns a lexicon with the bundled core of the VADER-style
// valence list: float valences on a [-4, 4] scale, booster/dampener factors,
// negations, emoticons, and special-case idioms. The full published list can
// be layered on top with MergeTSV.
func ValenceLexicon() *Lexicon {
	lx := NewLexicon("valence")
	for word, valence := range valenceWords {
		lx.words[word] = valence
	}
	for word, factor := range boosterWords {
		lx.modifiers[word] = factor
	}
	for _, word := range negationWords {
		lx.negations[word] = true
	}
	for phrase, valence := range valenceIdioms {
		lx.idioms[phrase] = valence
	}
	return lx
}

var valenceWords = map[string]float64{
	"abandoned":    -2.0,
	"absurd":       -1.6,
	"adorable":     2.2,
	"adore":        2.9,
	"afraid":       -2.2,
	"aggravating":  -1.9,
	"agonizing":    -2.6,
	"amazing":      2.8,
	"amusing":      1.7,
	"angry":        -2.3,
	"annoying":     -1.7,
	"appalling":    -2.5,
	"astonishing":  1.7,
	"atrocious":    -3.0,
	"awesome":      3.1,
	"awful":        -2.0,
	"bad":          -2.5,
	"badass":       1.5,
	"beautiful":    2.9,
	"best":         3.2,
	"bland":        -0.9,
	"bleak":        -1.7,
	"bold":         1.5,
	"boring":       -1.3,
	"brilliant":    2.8,
	"broken":       -1.8,
	"captivating":  2.2,
	"careless":     -1.6,
	"charming":     2.4,
	"cheerful":     2.5,
	"chilling":     -1.4,
	"classic":      1.4,
	"clever":       1.9,
	"clumsy":       -1.3,
	"compelling":   1.9,
	"convoluted":   -1.4,
	"crap":         -2.7,
	"crappy":       -2.7,
	"creepy":       -1.6,
	"cruel":        -2.8,
	"cute":         2.0,
	"dazzling":     2.4,
	"dead":         -3.3,
	"delight":      2.9,
	"delightful":   2.8,
	"depressing":   -2.2,
	"disappointing": -2.2,
	"disappointment": -2.3,
	"disaster":     -3.1,
	"disgusting":   -2.4,
	"disturbing":   -2.2,
	"dreadful":     -2.8,
	"dull":         -1.7,
	"dumb":         -2.3,
	"elegant":      2.1,
	"embarrassing": -1.8,
	"enchanting":   2.4,
	"engaging":     1.8,
	"enjoy":        2.2,
	"enjoyable":    2.2,
	"enjoyed":      2.3,
	"entertaining": 1.9,
	"epic":         1.9,
	"excellent":    2.7,
	"exceptional":  2.3,
	"exciting":     2.2,
	"exhilarating": 2.6,
	"fabulous":     2.4,
	"fail":         -2.5,
	"failure":      -2.7,
	"fantastic":    2.6,
	"fascinating":  2.3,
	"fine":         0.8,
	"flawed":       -1.7,
	"flawless":     2.5,
	"forgettable":  -1.4,
	"fun":          2.3,
	"funny":        1.9,
	"garbage":      -2.2,
	"genius":       2.6,
	"gem":          1.9,
	"glad":         2.0,
	"gloomy":       -1.9,
	"good":         1.9,
	"gorgeous":     2.6,
	"great":        3.1,
	"grim":         -1.8,
	"gripping":     1.8,
	"gross":        -2.1,
	"handsome":     2.2,
	"happy":        2.7,
	"hate":         -2.7,
	"hated":        -2.7,
	"heartwarming": 2.5,
	"hilarious":    2.1,
	"honest":       2.3,
	"hopeless":     -2.6,
	"horrible":     -2.5,
	"horrid":       -2.8,
	"horrific":     -2.9,
	"hurt":         -2.1,
	"idiotic":      -2.5,
	"ignore":       -1.3,
	"impressive":   2.2,
	"incoherent":   -1.7,
	"incredible":   2.4,
	"insipid":      -1.7,
	"inspiring":    2.3,
	"insult":       -2.1,
	"intense":      1.0,
	"interesting":  1.7,
	"joy":          2.8,
	"lackluster":   -1.6,
	"lame":         -1.7,
	"laugh":        2.3,
	"laughable":    -1.2,
	"like":         1.5,
	"liked":        1.7,
	"lol":          2.4,
	"lousy":        -2.1,
	"love":         3.2,
	"loved":        2.9,
	"lovely":       2.8,
	"magnificent":  2.9,
	"masterful":    2.4,
	"masterpiece":  3.1,
	"mediocre":     -1.3,
	"mess":         -1.8,
	"messy":        -1.5,
	"miserable":    -2.5,
	"nice":         1.8,
	"numb":         -1.4,
	"obnoxious":    -2.2,
	"offensive":    -2.2,
	"outstanding":  3.0,
	"overrated":    -1.5,
	"painful":      -2.3,
	"pathetic":     -2.3,
	"perfect":      2.7,
	"phenomenal":   2.8,
	"pleasant":     2.3,
	"pointless":    -1.9,
	"poor":         -1.9,
	"poorly":       -1.9,
	"powerful":     1.8,
	"predictable":  -1.1,
	"pretentious":  -1.6,
	"remarkable":   2.4,
	"ridiculous":   -1.6,
	"rotten":       -2.4,
	"sad":          -2.1,
	"scary":        -2.2,
	"shallow":      -1.4,
	"shit":         -2.6,
	"sloppy":       -1.5,
	"smart":        1.7,
	"solid":        1.3,
	"spectacular":  2.6,
	"stellar":      2.4,
	"stunning":     2.4,
	"stupid":       -2.4,
	"sublime":      2.5,
	"suck":         -2.2,
	"sucked":       -2.3,
	"sucks":        -2.3,
	"superb":       3.0,
	"sux":          -1.5,
	"sweet":        2.0,
	"terrible":     -2.1,
	"terrific":     2.6,
	"thrilling":    2.2,
	"tiresome":     -1.7,
	"touching":     2.0,
	"tragic":       -2.2,
	"underrated":   0.9,
	"uneven":       -1.0,
	"unfunny":      -1.8,
	"unique":       1.4,
	"unwatchable":  -2.8,
	"waste":        -1.8,
	"weak":         -1.8,
	"wonderful":    2.7,
	"worst":        -3.1,
	"worthless":    -2.3,
	"wow":          2.8,
	"wretched":     -2.5,

	// emoticons kept whole by the tokenizer
	":)":  2.0,
	":-)": 2.2,
	":))": 2.4,
	":D":  2.3,
	":-D": 2.3,
	";)":  1.4,
	";-)": 1.3,
	"<3":  2.6,
	"=)":  2.1,
	":(":  -1.9,
	":-(": -1.8,
	":((": -2.4,
	":'(": -2.2,
	"</3": -2.5,
	"=(":  -2.0,
	"D:":  -1.4,
}

// booster/dampener 'intensifiers' or 'degree adverbs'
var boosterWords = map[string]float64{
	"absolutely":    boostIncr,
	"amazingly":     boostIncr,
	"awfully":       boostIncr,
	"completely":    boostIncr,
	"considerably":  boostIncr,
	"decidedly":     boostIncr,
	"deeply":        boostIncr,
	"enormously":    boostIncr,
	"entirely":      boostIncr,
	"especially":    boostIncr,
	"exceptionally": boostIncr,
	"extremely":     boostIncr,
	"fabulously":    boostIncr,
	"frickin":       boostIncr,
	"fricking":      boostIncr,
	"friggin":       boostIncr,
	"frigging":      boostIncr,
	"fully":         boostIncr,
	"greatly":       boostIncr,
	"hella":         boostIncr,
	"highly":        boostIncr,
	"hugely":        boostIncr,
	"incredibly":    boostIncr,
	"intensely":     boostIncr,
	"majorly":       boostIncr,
	"more":          boostIncr,
	"most":          boostIncr,
	"particularly":  boostIncr,
	"purely":        boostIncr,
	"quite":         boostIncr,
	"really":        boostIncr,
	"remarkably":    boostIncr,
	"so":            boostIncr,
	"substantially": boostIncr,
	"thoroughly":    boostIncr,
	"totally":       boostIncr,
	"tremendously":  boostIncr,
	"uber":          boostIncr,
	"unbelievably":  boostIncr,
	"unusually":     boostIncr,
	"utterly":       boostIncr,
	"very":          boostIncr,

	"almost":      boostDecr,
	"barely":      boostDecr,
	"hardly":      boostDecr,
	"just enough": boostDecr,
	"kind of":     boostDecr,
	"sort of":     boostDecr,
	"kinda":        boostDecr,
	"kindof":       boostDecr,
	"kind-of":      boostDecr,
	"less":         boostDecr,
	"little":       boostDecr,
	"marginally":   boostDecr,
	"occasionally": boostDecr,
	"partly":       boostDecr,
	"scarcely":     boostDecr,
	"slightly":     boostDecr,
	"somewhat":     boostDecr,
	"sorta":        boostDecr,
	"sortof":       boostDecr,
	"sort-of":      boostDecr,
}

var negationWords = []string{
	"aint", "ain't", "arent", "aren't", "cannot", "cant", "can't",
	"couldnt", "couldn't", "darent", "daren't", "didnt", "didn't",
	"doesnt", "doesn't", "dont", "don't", "hadnt", "hadn't", "hasnt",
	"hasn't", "havent", "haven't", "isnt", "isn't", "mightnt",
	"mightn't", "mustnt", "mustn't", "neither", "neednt", "needn't",
	"never", "none", "nope", "nor", "not", "nothing", "nowhere",
	"oughtnt", "oughtn't", "shant", "shan't", "shouldnt", "shouldn't",
	"uhuh", "uh-uh", "wasnt", "wasn't", "werent", "weren't", "without",
	"wont", "won't", "wouldnt", "wouldn't", "rarely", "seldom", "despite",
}

// special-case idioms containing lexicon words
var valenceIdioms = map[string]float64{
	"the shit":      3,
	"the bomb":      3,
	"bad ass":       1.5,
	"yeah right":    -2,
	"kiss of death": -1.5,
	"cut the mustard": 2,
	"hand to mouth":   -2,
	"back handed":     -2,
	"blow smoke":      -2,
	"upper hand":      1,
	"break a leg":     2,
	"on the ball":     2,
	"under the weather": -2,
}
