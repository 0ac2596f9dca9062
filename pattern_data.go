package moodlex

// PatternLexicon returns a lexicon of adjective and adverb polarities on a
// [-1, 1] scale with companion subjectivity values, plus modifier factors and
// English negations. Additional entries can be merged from a JSON file with
// MergeJSON.
func PatternLexicon() *Lexicon {
	lx := NewLexicon("pattern")
	for word, entry := range patternWords {
		lx.words[word] = entry[0]
		lx.subjectivity[word] = entry[1]
	}
	for word, factor := range patternModifiers {
		lx.modifiers[word] = factor
	}
	for _, word := range patternNegations {
		lx.negations[word] = true
	}
	return lx
}

// patternWords maps a word to its {polarity, subjectivity} pair.
var patternWords = map[string][2]float64{
	"amazing":       {0.6, 0.9},
	"annoying":      {-0.5, 0.8},
	"appalling":     {-0.9, 0.9},
	"atrocious":     {-0.8, 0.9},
	"awesome":       {1.0, 1.0},
	"awful":         {-1.0, 1.0},
	"awkward":       {-0.4, 0.7},
	"bad":           {-0.7, 0.7},
	"beautiful":     {0.85, 1.0},
	"believable":    {0.3, 0.6},
	"best":          {1.0, 0.3},
	"bland":         {-0.4, 0.6},
	"bleak":         {-0.5, 0.7},
	"bold":          {0.4, 0.7},
	"boring":        {-0.8, 1.0},
	"brilliant":     {0.9, 0.9},
	"captivating":   {0.7, 0.9},
	"careless":      {-0.5, 0.6},
	"charming":      {0.7, 0.9},
	"cheap":         {-0.4, 0.7},
	"cheerful":      {0.6, 0.9},
	"classic":       {0.4, 0.5},
	"clever":        {0.6, 0.8},
	"clumsy":        {-0.4, 0.7},
	"compelling":    {0.6, 0.8},
	"confusing":     {-0.4, 0.7},
	"contrived":     {-0.5, 0.8},
	"convoluted":    {-0.4, 0.7},
	"creepy":        {-0.5, 0.8},
	"cruel":         {-0.8, 0.9},
	"cute":          {0.5, 1.0},
	"dazzling":      {0.8, 0.9},
	"decent":        {0.3, 0.6},
	"delightful":    {0.8, 0.9},
	"depressing":    {-0.7, 0.9},
	"disappointing": {-0.6, 0.7},
	"disgusting":    {-0.9, 1.0},
	"disturbing":    {-0.6, 0.8},
	"dreadful":      {-0.8, 0.9},
	"dull":          {-0.6, 0.8},
	"dumb":          {-0.7, 0.8},
	"elegant":       {0.6, 0.8},
	"embarrassing":  {-0.5, 0.7},
	"enchanting":    {0.7, 0.9},
	"engaging":      {0.6, 0.8},
	"enjoyable":     {0.6, 0.8},
	"entertaining":  {0.6, 0.8},
	"epic":          {0.6, 0.8},
	"excellent":     {1.0, 1.0},
	"exceptional":   {0.8, 0.8},
	"exciting":      {0.7, 0.9},
	"fabulous":      {0.8, 0.9},
	"fantastic":     {0.9, 0.9},
	"fascinating":   {0.7, 0.9},
	"fine":          {0.4, 0.5},
	"flat":          {-0.3, 0.5},
	"flawed":        {-0.5, 0.7},
	"flawless":      {0.8, 0.8},
	"forgettable":   {-0.5, 0.7},
	"fresh":         {0.4, 0.6},
	"fun":           {0.6, 0.8},
	"funny":         {0.5, 0.9},
	"generic":       {-0.3, 0.5},
	"gifted":        {0.6, 0.7},
	"gloomy":        {-0.6, 0.8},
	"good":          {0.7, 0.6},
	"gorgeous":      {0.8, 1.0},
	"graceful":      {0.6, 0.8},
	"great":         {0.8, 0.75},
	"grim":          {-0.5, 0.7},
	"gripping":      {0.6, 0.8},
	"gross":         {-0.7, 0.9},
	"happy":         {0.8, 1.0},
	"heartwarming":  {0.7, 0.9},
	"hilarious":     {0.7, 0.9},
	"hollow":        {-0.4, 0.6},
	"honest":        {0.6, 0.7},
	"hopeless":      {-0.7, 0.8},
	"horrible":      {-1.0, 1.0},
	"horrid":        {-0.9, 1.0},
	"idiotic":       {-0.8, 0.9},
	"impressive":    {0.7, 0.8},
	"incoherent":    {-0.5, 0.7},
	"incredible":    {0.9, 0.9},
	"insipid":       {-0.5, 0.8},
	"inspired":      {0.5, 0.7},
	"inspiring":     {0.6, 0.8},
	"intelligent":   {0.6, 0.7},
	"intense":       {0.3, 0.6},
	"interesting":   {0.5, 0.5},
	"lackluster":    {-0.5, 0.7},
	"lame":          {-0.6, 0.8},
	"laughable":     {-0.5, 0.8},
	"lazy":          {-0.4, 0.7},
	"lovely":        {0.8, 0.9},
	"magnificent":   {0.9, 0.9},
	"masterful":     {0.8, 0.8},
	"mediocre":      {-0.4, 0.7},
	"memorable":     {0.5, 0.7},
	"messy":         {-0.4, 0.6},
	"miserable":     {-0.8, 0.9},
	"moving":        {0.5, 0.7},
	"nice":          {0.6, 0.9},
	"obnoxious":     {-0.6, 0.8},
	"offensive":     {-0.6, 0.8},
	"original":      {0.4, 0.6},
	"outstanding":   {0.9, 0.9},
	"overrated":     {-0.5, 0.8},
	"painful":       {-0.6, 0.8},
	"pathetic":      {-0.7, 0.9},
	"perfect":       {1.0, 1.0},
	"phenomenal":    {0.9, 0.9},
	"pleasant":      {0.6, 0.8},
	"pointless":     {-0.6, 0.8},
	"poor":          {-0.6, 0.7},
	"powerful":      {0.5, 0.7},
	"predictable":   {-0.3, 0.6},
	"pretentious":   {-0.5, 0.8},
	"refreshing":    {0.5, 0.7},
	"remarkable":    {0.7, 0.8},
	"ridiculous":    {-0.5, 0.8},
	"rotten":        {-0.7, 0.8},
	"sad":           {-0.5, 1.0},
	"satisfying":    {0.6, 0.8},
	"scary":         {-0.4, 0.8},
	"shallow":       {-0.4, 0.6},
	"sharp":         {0.4, 0.6},
	"sloppy":        {-0.5, 0.7},
	"slow":          {-0.3, 0.5},
	"smart":         {0.5, 0.7},
	"solid":         {0.4, 0.5},
	"spectacular":   {0.8, 0.9},
	"stale":         {-0.4, 0.6},
	"stellar":       {0.8, 0.8},
	"strong":        {0.4, 0.5},
	"stunning":      {0.8, 0.9},
	"stupid":        {-0.8, 0.9},
	"sublime":       {0.8, 0.9},
	"superb":        {0.9, 0.9},
	"superficial":   {-0.4, 0.7},
	"sweet":         {0.5, 0.8},
	"tedious":       {-0.6, 0.8},
	"terrible":      {-1.0, 1.0},
	"terrific":      {0.8, 0.9},
	"thrilling":     {0.7, 0.9},
	"tiresome":      {-0.5, 0.7},
	"touching":      {0.6, 0.8},
	"tragic":        {-0.5, 0.7},
	"unbearable":    {-0.8, 0.9},
	"unconvincing":  {-0.5, 0.7},
	"underrated":    {0.3, 0.7},
	"uneven":        {-0.3, 0.5},
	"unfunny":       {-0.6, 0.9},
	"unique":        {0.4, 0.6},
	"unpleasant":    {-0.6, 0.8},
	"unwatchable":   {-0.9, 1.0},
	"vivid":         {0.5, 0.7},
	"weak":          {-0.5, 0.6},
	"wonderful":     {0.9, 1.0},
	"wooden":        {-0.4, 0.6},
	"worst":         {-1.0, 1.0},
	"worthless":     {-0.7, 0.8},
	"wretched":      {-0.8, 0.9},
}

// patternModifiers maps degree adverbs to the fraction by which they scale a
// following word's polarity.
var patternModifiers = map[string]float64{
	"absolutely":   0.4,
	"completely":   0.3,
	"deeply":       0.3,
	"especially":   0.3,
	"exceptionally": 0.4,
	"extremely":    0.5,
	"fairly":       -0.1,
	"highly":       0.3,
	"hugely":       0.4,
	"incredibly":   0.4,
	"insanely":     0.5,
	"kinda":        -0.2,
	"mildly":       -0.2,
	"moderately":   -0.1,
	"mostly":       -0.1,
	"particularly": 0.3,
	"pretty":       0.2,
	"quite":        0.2,
	"rather":       0.1,
	"really":       0.3,
	"remarkably":   0.3,
	"slightly":     -0.3,
	"so":           0.3,
	"somewhat":     -0.2,
	"terribly":     0.4,
	"thoroughly":   0.3,
	"totally":      0.3,
	"truly":        0.3,
	"utterly":      0.4,
	"very":         0.3,
}

var patternNegations = []string{
	"no", "not", "never", "neither", "nor", "none", "nobody", "nothing",
	"hardly", "scarcely", "barely", "without", "n't", "cannot",
}
