// Generates a synthetic, rule-labelled training dataset so a first model
// artifact can be trained before any real engagement data exists. The column
// layout is the contract the external trainer consumes.
package main

import (
	"encoding/csv"
	"flag"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/GarvitManralDev/fitlens-backend/pkg/features"
	"github.com/GarvitManralDev/fitlens-backend/pkg/rules"
	"github.com/GarvitManralDev/fitlens-backend/pkg/traits"

	"github.com/google/uuid"
)

var header = []string{
	"session_id", "slate_id", "product_id", "label",
	"price", "has_size", "style", "skin_temperature", "skin_depth", "frame", "height_bucket", "shoulders",
	"color_tags", "fit_tags", "avoid_tags", "rank_in_slate",
}

type sessionTraits struct {
	traits traits.Traits
	style  string
	size   string
	budget int
}

type syntheticProduct struct {
	id    string
	price int
	sizes []string
	tags  []string
}

func main() {
	out := flag.String("out", "ml/events_training_data.csv", "output CSV path")
	sessions := flag.Int("sessions", 200, "number of synthetic sessions")
	perSlate := flag.Int("items", 16, "products per slate")
	seed := flag.Int64("seed", 0, "RNG seed (0 = random)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	if *seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatal("Error: failed to create output dir:", err)
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal("Error: failed to create output file:", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		log.Fatal("Error: write header:", err)
	}

	for s := 0; s < *sessions; s++ {
		sessionId := "s_" + shortId()
		slateId := "sl_" + shortId()
		tr := sampleTraits(rng)

		for rank := 0; rank < *perSlate; rank++ {
			prod := sampleProduct(rng, tr.style)
			label, hasSize := labelExample(rng, tr, prod)
			tagsJoin := features.JoinTags(prod.tags)

			record := []string{
				sessionId, slateId, prod.id, strconv.Itoa(label),
				strconv.Itoa(prod.price), strconv.Itoa(hasSize), tr.style,
				tr.traits.SkinTemperature, tr.traits.SkinDepth, tr.traits.Frame,
				tr.traits.HeightBucket, tr.traits.Shoulders,
				tagsJoin, tagsJoin, "", strconv.Itoa(rank),
			}
			if err := w.Write(record); err != nil {
				log.Fatal("Error: write record:", err)
			}
		}
	}

	log.Printf("Wrote %d sessions x %d items -> %s", *sessions, *perSlate, *out)
}

func sampleTraits(rng *rand.Rand) sessionTraits {
	styles := []string{"casual", "traditional"}
	temps := []string{traits.SkinTemperatureWarm, traits.SkinTemperatureCool, traits.SkinTemperatureNeutral}
	depths := []string{traits.SkinDepthLight, traits.SkinDepthMedium, traits.SkinDepthDeep}
	frames := []string{traits.FrameSlim, traits.FrameRegular, traits.FrameFuller}
	heights := []string{traits.HeightShort, traits.HeightAvg, traits.HeightTall}
	shoulders := []string{traits.ShouldersNarrow, traits.ShouldersAverage, traits.ShouldersBroad}
	budgets := []int{799, 999, 1299, 1499, 1999, 2499, 2999}
	sizes := []string{"", "S", "M", "L", "XL"}

	return sessionTraits{
		traits: traits.Traits{
			SkinTemperature: pick(rng, temps),
			SkinDepth:       pick(rng, depths),
			HairType:        "unknown",
			HairColor:       "unknown",
			Frame:           pick(rng, frames),
			HeightBucket:    pick(rng, heights),
			Shoulders:       pick(rng, shoulders),
		},
		style:  pick(rng, styles),
		size:   pick(rng, sizes),
		budget: budgets[rng.Intn(len(budgets))],
	}
}

var (
	allColors = []string{
		"olive", "mustard", "rust", "warm beige", "cream", "maroon", "brown", "tan",
		"navy", "charcoal", "cool gray", "emerald", "wine", "ice blue", "black", "white",
		"taupe", "sand", "stone",
	}
	allFits  = []string{"slim", "regular", "structured-shoulder", "relaxed", "straight", "drape", "no-cling"}
	allNecks = []string{"mandarin", "crew", "stand-collar", "v-neck", "henley", "short-mandarin"}
	allSizes = []string{"S", "M", "L", "XL"}
	prices   = []int{599, 799, 999, 1299, 1499, 1799, 1999, 2499, 2999, 3499}
)

func sampleProduct(rng *rand.Rand, style string) syntheticProduct {
	tags := []string{style}
	tags = append(tags, sample(rng, allColors, 1+rng.Intn(3))...)
	tags = append(tags, sample(rng, allFits, 1+rng.Intn(2))...)
	tags = append(tags, sample(rng, allNecks, rng.Intn(2))...)

	return syntheticProduct{
		id:    "p_" + shortId(),
		price: prices[rng.Intn(len(prices))],
		sizes: sample(rng, allSizes, 1+rng.Intn(4)),
		tags:  dedupe(tags),
	}
}

// labelExample scores one (traits, product) pair with the rule tables and
// flips a biased coin so labels stay noisy like real engagement.
func labelExample(rng *rand.Rand, tr sessionTraits, prod syntheticProduct) (int, int) {
	tagSet := make(map[string]bool, len(prod.tags))
	for _, t := range prod.tags {
		tagSet[strings.ToLower(t)] = true
	}

	score := 0.0
	if anyIn(tagSet, rules.PaletteFor(tr.traits)) {
		score += 0.8
	}
	if anyIn(tagSet, rules.FitTagsFor(tr.traits, tr.style)) {
		score += 0.6
	}
	if anyIn(tagSet, rules.AvoidTagsFor(tr.traits)) {
		score -= 0.5
	}

	hasSize := 0
	if tr.size != "" && contains(prod.sizes, tr.size) {
		hasSize = 1
		score += 0.5
	}

	if prod.price <= tr.budget {
		score += 0.4
	} else {
		over := float64(prod.price-tr.budget) / float64(tr.budget)
		if over > 0.6 {
			over = 0.6
		}
		score -= over
	}

	score += rng.Float64()*0.4 - 0.2

	prob := 0.15 + 0.2*score
	if prob < 0 {
		prob = 0
	}
	if prob > 1 {
		prob = 1
	}

	label := 0
	if rng.Float64() < prob {
		label = 1
	}
	return label, hasSize
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func sample(rng *rand.Rand, options []string, k int) []string {
	idx := rng.Perm(len(options))
	if k > len(options) {
		k = len(options)
	}
	out := make([]string, 0, k)
	for _, i := range idx[:k] {
		out = append(out, options[i])
	}
	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func anyIn(tagSet map[string]bool, wanted []string) bool {
	for _, w := range wanted {
		if tagSet[strings.ToLower(w)] {
			return true
		}
	}
	return false
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func shortId() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
