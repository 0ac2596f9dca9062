package moodlex

// AFINNLexicon returns a lexicon with the bundled core of the AFINN word
// list: integer valences in [-5, 5], no modifiers, no negations. The full
// published list can be layered on top with MergeTSV.
func AFINNLexicon() *Lexicon {
	lx := NewLexicon("afinn")
	for word, valence := range afinnWords {
		lx.words[word] = valence
	}
	return lx
}

var afinnWords = map[string]float64{
	// -5 .. -4
	"bastard":     -5,
	"bitch":       -5,
	"catastrophic": -4,
	"damn":        -4,
	"fraud":       -4,
	"fraudulent":  -4,
	"hell":        -4,
	"jackass":     -4,
	"prick":       -5,
	"torture":     -4,
	"tortured":    -4,

	// -3
	"abhor":         -3,
	"abhorrent":     -3,
	"abuse":         -3,
	"abusive":       -3,
	"anger":         -3,
	"angry":         -3,
	"anguish":       -3,
	"apathy":        -3,
	"awful":         -3,
	"bad":           -3,
	"badly":         -3,
	"bankrupt":      -3,
	"betray":        -3,
	"betrayal":      -3,
	"betrayed":      -3,
	"bloody":        -3,
	"boring":        -3,
	"catastrophe":   -3,
	"cheat":         -3,
	"cheated":       -3,
	"crap":          -3,
	"crime":         -3,
	"criminal":      -3,
	"crisis":        -3,
	"cruel":         -3,
	"cruelty":       -3,
	"dead":          -3,
	"deceit":        -3,
	"deceitful":     -3,
	"deceive":       -3,
	"deceived":      -3,
	"deception":     -3,
	"despair":       -3,
	"desperate":     -3,
	"destroy":       -3,
	"destroyed":     -3,
	"destruction":   -3,
	"die":           -3,
	"died":          -3,
	"dire":          -3,
	"disastrous":    -3,
	"disgust":       -3,
	"disgusted":     -3,
	"disgusting":    -3,
	"distrust":      -3,
	"dreadful":      -3,
	"dumb":          -3,
	"evil":          -3,
	"fake":          -3,
	"fiasco":        -3,
	"frightening":   -3,
	"furious":       -3,
	"goddamn":       -3,
	"guilty":        -3,
	"hate":          -3,
	"hated":         -3,
	"hates":         -3,
	"hating":        -3,
	"heartbreaking": -3,
	"heartbroken":   -3,
	"horrendous":    -3,
	"horrible":      -3,
	"horrific":      -3,
	"horrified":     -3,
	"hysterical":    -3,
	"idiot":         -3,
	"idiotic":       -3,
	"illegal":       -3,
	"imbecile":      -3,
	"irate":         -3,
	"irritated":     -3,
	"irritating":    -3,
	"kill":          -3,
	"killed":        -3,
	"liar":          -3,
	"loathe":        -3,
	"loser":         -3,
	"loss":          -3,
	"lost":          -3,
	"lunatic":       -3,
	"mad":           -3,
	"madness":       -3,
	"miserable":     -3,
	"misleading":    -3,
	"moron":         -3,
	"nasty":         -3,
	"nuts":          -3,
	"obnoxious":     -3,
	"outrage":       -3,
	"outraged":      -3,
	"panic":         -3,
	"racist":        -3,
	"rant":          -3,
	"ridiculous":    -3,
	"scandal":       -3,
	"scandalous":    -3,
	"selfish":       -3,
	"shitty":        -3,
	"stupidly":      -3,
	"suck":          -3,
	"sucks":         -3,
	"terrible":      -3,
	"terribly":      -3,
	"terrified":     -3,
	"terror":        -3,
	"ugly":          -3,
	"vile":          -3,
	"violence":      -3,
	"violent":       -3,
	"woeful":        -3,
	"worried":       -3,
	"worry":         -3,
	"worse":         -3,
	"worsen":        -3,
	"worst":         -3,

	// -2
	"accident":       -2,
	"afraid":         -2,
	"aggressive":     -2,
	"annoyed":        -2,
	"annoying":       -2,
	"anxious":        -2,
	"appalling":      -2,
	"arrogant":       -2,
	"ashamed":        -2,
	"awkward":        -2,
	"bitter":         -2,
	"bizarre":        -2,
	"blame":          -2,
	"bored":          -2,
	"bother":         -2,
	"broken":         -2,
	"careless":       -2,
	"chaos":          -2,
	"chaotic":        -2,
	"cheap":          -2,
	"childish":       -2,
	"clueless":       -2,
	"collapse":       -2,
	"complain":       -2,
	"complained":     -2,
	"confused":       -2,
	"confusing":      -2,
	"contrived":      -2,
	"crazy":          -2,
	"cried":          -2,
	"damage":         -2,
	"danger":         -2,
	"death":          -2,
	"depressed":      -2,
	"depressing":     -2,
	"dirty":          -2,
	"disappoint":     -2,
	"disappointed":   -2,
	"disappointing":  -2,
	"disappointment": -2,
	"disaster":       -2,
	"dishonest":      -2,
	"dislike":        -2,
	"dismal":         -2,
	"distress":       -2,
	"disturbing":     -2,
	"dodgy":          -2,
	"doom":           -2,
	"dreary":         -2,
	"dubious":        -2,
	"dud":            -2,
	"dull":           -2,
	"embarrassing":   -2,
	"enemy":          -2,
	"error":          -2,
	"exhausted":      -2,
	"fail":           -2,
	"failed":         -2,
	"fails":          -2,
	"failure":        -2,
	"fear":           -2,
	"feeble":         -2,
	"flop":           -2,
	"fool":           -2,
	"foolish":        -2,
	"forgettable":    -2,
	"frustrated":     -2,
	"frustrating":    -2,
	"frustration":    -2,
	"gloomy":         -2,
	"greedy":         -2,
	"grief":          -2,
	"gross":          -2,
	"harm":           -2,
	"harmful":        -2,
	"harsh":          -2,
	"helpless":       -2,
	"hopeless":       -2,
	"hostile":        -2,
	"hurt":           -2,
	"ignorant":       -2,
	"ill":            -2,
	"incompetent":    -2,
	"inferior":       -2,
	"insane":         -2,
	"insipid":        -2,
	"insult":         -2,
	"insulting":      -2,
	"jealous":        -2,
	"lame":           -2,
	"lonely":         -2,
	"meaningless":    -2,
	"mediocre":       -2,
	"mess":           -2,
	"messed":         -2,
	"mindless":       -2,
	"miss":           -2,
	"missed":         -2,
	"mistake":        -2,
	"mistakes":       -2,
	"mourn":          -2,
	"negative":       -2,
	"neglect":        -2,
	"nervous":        -2,
	"nonsense":       -2,
	"odd":            -2,
	"offend":         -2,
	"offended":       -2,
	"pain":           -2,
	"pathetic":       -2,
	"poor":           -2,
	"predictable":    -2,
	"problem":        -2,
	"problems":       -2,
	"regret":         -2,
	"restless":       -2,
	"risk":           -2,
	"rotten":         -2,
	"ruin":           -2,
	"ruined":         -2,
	"sad":            -2,
	"sadly":          -2,
	"scare":          -2,
	"scared":         -2,
	"scary":          -2,
	"shallow":        -2,
	"shame":          -2,
	"shameful":       -2,
	"shock":          -2,
	"shocked":        -2,
	"shocking":       -2,
	"sick":           -2,
	"sloppy":         -2,
	"sluggish":       -2,
	"stolen":         -2,
	"strange":        -2,
	"stressed":       -2,
	"struggle":       -2,
	"stuck":          -2,
	"stupid":         -2,
	"suffer":         -2,
	"suffering":      -2,
	"suspicious":     -2,
	"tedious":        -2,
	"tense":          -2,
	"tired":          -2,
	"tragedy":        -2,
	"tragic":         -2,
	"trapped":        -2,
	"trouble":        -2,
	"troubled":       -2,
	"unacceptable":   -2,
	"uncomfortable":  -2,
	"uneasy":         -2,
	"unfair":         -2,
	"unhappy":        -2,
	"uninspired":     -2,
	"unjust":         -2,
	"unprofessional": -2,
	"unwatchable":    -2,
	"upset":          -2,
	"useless":        -2,
	"vague":          -2,
	"vicious":        -2,
	"waste":          -2,
	"wasted":         -2,
	"weak":           -2,
	"weary":          -2,
	"weird":          -2,
	"wicked":         -2,
	"wooden":         -2,
	"worthless":      -2,
	"wreck":          -2,
	"wrong":          -2,

	// -1
	"admit":      -1,
	"alas":       -1,
	"alone":      -1,
	"avoid":      -1,
	"block":      -1,
	"cut":        -1,
	"delay":      -1,
	"difficult":  -1,
	"doubt":      -1,
	"doubtful":   -1,
	"drag":       -1,
	"dragged":    -1,
	"drop":       -1,
	"empty":      -1,
	"escape":     -1,
	"fight":      -1,
	"forced":     -1,
	"forget":     -1,
	"forgotten":  -1,
	"hard":       -1,
	"hide":       -1,
	"ignore":     -1,
	"ironic":     -1,
	"lazy":       -1,
	"leave":      -1,
	"limited":    -1,
	"moody":      -1,
	"no":         -1,
	"noisy":      -1,
	"pressure":   -1,
	"pretend":    -1,
	"sappy":      -1,
	"silly":      -1,
	"slow":       -1,
	"sorry":      -1,
	"stop":       -1,
	"stopped":    -1,
	"uncertain":  -1,
	"unclear":    -1,
	"unsure":     -1,

	// +1
	"accept":     1,
	"active":     1,
	"adequate":   1,
	"agree":      1,
	"alive":      1,
	"big":        1,
	"bright":     1,
	"capable":    1,
	"certain":    1,
	"clear":      1,
	"comedy":     1,
	"cool":       1,
	"curious":    1,
	"dream":      1,
	"easy":       1,
	"faith":      1,
	"feeling":    1,
	"fit":        1,
	"free":       1,
	"fresh":      1,
	"grant":      1,
	"hope":       1,
	"huge":       1,
	"interest":   1,
	"invite":     1,
	"join":       1,
	"keen":       1,
	"laugh":      1,
	"laughed":    1,
	"natural":    1,
	"pretty":     1,
	"promise":    1,
	"significant": 1,
	"smart":      1,
	"spirit":     1,
	"trust":      1,
	"want":       1,
	"warm":       1,
	"wish":       1,
	"yeah":       1,
	"yes":        1,

	// +2
	"ability":      2,
	"accomplished": 2,
	"admire":       2,
	"adventure":    2,
	"advantage":    2,
	"amaze":        2,
	"amazed":       2,
	"ambitious":    2,
	"appreciate":   2,
	"appreciated":  2,
	"attraction":   2,
	"bargain":      2,
	"benefit":      2,
	"better":       2,
	"bold":         2,
	"brave":        2,
	"calm":         2,
	"care":         2,
	"careful":      2,
	"charismatic":  2,
	"cheerful":     2,
	"cherish":      2,
	"clean":        2,
	"clever":       2,
	"comfort":      2,
	"comfortable":  2,
	"compelling":   2,
	"competent":    2,
	"confidence":   2,
	"confident":    2,
	"courage":      2,
	"courageous":   2,
	"creative":     2,
	"cute":         2,
	"dedicated":    2,
	"determined":   2,
	"effective":    2,
	"elegant":      2,
	"encourage":    2,
	"energetic":    2,
	"engaging":     2,
	"enjoy":        2,
	"enjoyable":    2,
	"enjoyed":      2,
	"entertaining": 2,
	"fair":         2,
	"favorite":     2,
	"fearless":     2,
	"fine":         2,
	"focused":      2,
	"fond":         2,
	"fortunate":    2,
	"freedom":      2,
	"friendly":     2,
	"generous":     2,
	"gift":         2,
	"glorious":     2,
	"grateful":     2,
	"growth":       2,
	"healthy":      2,
	"help":         2,
	"helpful":      2,
	"hero":         2,
	"hilarious":    2,
	"honest":       2,
	"honor":        2,
	"hopeful":      2,
	"humor":        2,
	"humorous":     2,
	"important":    2,
	"improve":      2,
	"improved":     2,
	"improvement":  2,
	"innovative":   2,
	"inspire":      2,
	"inspired":     2,
	"intelligent":  2,
	"interested":   2,
	"interesting":  2,
	"joke":         2,
	"kind":         2,
	"like":         2,
	"liked":        2,
	"likes":        2,
	"lively":       2,
	"loving":       2,
	"mature":       2,
	"meaningful":   2,
	"memorable":    2,
	"nifty":        2,
	"noble":        2,
	"optimistic":   2,
	"peaceful":     2,
	"playful":      2,
	"positive":     2,
	"powerful":     2,
	"proud":        2,
	"recommend":    2,
	"recommended":  2,
	"relaxed":      2,
	"relieved":     2,
	"remarkable":   2,
	"rescue":       2,
	"respected":    2,
	"responsible":  2,
	"reward":       2,
	"rewarding":    2,
	"rich":         2,
	"satisfied":    2,
	"save":         2,
	"secure":       2,
	"sincere":      2,
	"smarter":      2,
	"smile":        2,
	"solid":        2,
	"sophisticated": 2,
	"stable":       2,
	"strength":     2,
	"strong":       2,
	"stronger":     2,
	"succeed":      2,
	"success":      2,
	"support":      2,
	"supportive":   2,
	"sweet":        2,
	"sympathetic":  2,
	"thank":        2,
	"thankful":     2,
	"thanks":       2,
	"thoughtful":   2,
	"tolerant":     2,
	"top":          2,
	"treasure":     2,
	"true":         2,
	"trusted":      2,
	"useful":       2,
	"vivid":        2,
	"warmth":       2,
	"wealthy":      2,
	"welcome":      2,
	"worth":        2,
	"worthy":       2,
	"youthful":     2,

	// +3
	"admirable":   3,
	"adorable":    3,
	"adore":       3,
	"affection":   3,
	"applause":    3,
	"astounding":  3,
	"award":       3,
	"beautiful":   3,
	"beautifully": 3,
	"beloved":     3,
	"best":        3,
	"blockbuster": 3,
	"bliss":       3,
	"breakthrough": 3,
	"captivated":  3,
	"charm":       3,
	"charming":    3,
	"classy":      3,
	"delight":     3,
	"delighted":   3,
	"enthusiastic": 3,
	"excellence":  3,
	"excellent":   3,
	"excited":     3,
	"excitement":  3,
	"exciting":    3,
	"faithful":    3,
	"fascinate":   3,
	"fascinating": 3,
	"glad":        3,
	"glamorous":   3,
	"good":        3,
	"gracious":    3,
	"grand":       3,
	"great":       3,
	"greater":     3,
	"greatest":    3,
	"happiness":   3,
	"happy":       3,
	"heartfelt":   3,
	"heroic":      3,
	"impress":     3,
	"impressed":   3,
	"impressive":  3,
	"inspiring":   3,
	"joy":         3,
	"joyful":      3,
	"kudos":       3,
	"lovable":     3,
	"love":        3,
	"loved":       3,
	"lovely":      3,
	"loyal":       3,
	"luck":        3,
	"lucky":       3,
	"marvel":      3,
	"marvelous":   3,
	"merry":       3,
	"nice":        3,
	"perfect":     3,
	"perfectly":   3,
	"pleasant":    3,
	"pleased":     3,
	"pleasure":    3,
	"popular":     3,
	"praise":      3,
	"praised":     3,
	"prosperous":  3,
	"rigorous":    3,
	"sexy":        3,
	"soothing":    3,
	"sparkle":     3,
	"splendid":    3,
	"successful":  3,
	"super":       3,
	"vibrant":     3,
	"visionary":   3,
	"vivacious":   3,
	"wealth":      3,
	"won":         3,
	"wonderfully": 3,
	"yummy":       3,

	// +4 .. +5
	"amazing":      4,
	"awesome":      4,
	"breathtaking": 5,
	"brilliant":    4,
	"ecstatic":     4,
	"exuberant":    4,
	"fabulous":     4,
	"fantastic":    4,
	"fun":          4,
	"funny":        4,
	"godsend":      4,
	"heavenly":     4,
	"hurrah":       5,
	"masterpiece":  4,
	"miracle":      4,
	"outstanding":  5,
	"overjoyed":    4,
	"rejoice":      4,
	"stunning":     4,
	"superb":       5,
	"terrific":     4,
	"thrilled":     5,
	"triumph":      4,
	"triumphant":   4,
	"win":          4,
	"winner":       4,
	"winning":      4,
	"wonderful":    4,
	"wow":          4,
}
