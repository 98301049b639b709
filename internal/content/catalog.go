package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/saulo-duarte/statbook-lambda/internal/quiz"
)

//go:embed catalog
var embedded embed.FS

var (
	ErrChapterNotFound = errors.New("chapter not found")
	ErrGameNotFound    = errors.New("game not found")
	ErrInvalidMode     = errors.New("invalid mode")
	ErrDuplicateGame   = errors.New("duplicate game slug")
)

const chaptersHome = "/chapters"

type Service interface {
	Chapters() []Chapter
	Chapter(number int) (Chapter, error)
	Navigation(currentPath string) NavigationInfo
	Games() []Game
	Game(slug string) (Game, error)
	Bank(slug string, mode Mode) ([]quiz.Question, error)
}

// Catalog is the read-only set of chapters and games loaded at startup.
type Catalog struct {
	chapters []Chapter
	byNumber map[int]int
	games    []Game
	bySlug   map[string]int
}

// Default loads the catalog compiled into the binary.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "catalog")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// MustDefault is Default for startup wiring.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("content catalog: %v", err))
	}
	return c
}

// Load reads chapters.json and every games/*.json file of fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, "chapters.json")
	if err != nil {
		return nil, fmt.Errorf("read chapters: %w", err)
	}
	var chapters []Chapter
	if err := json.Unmarshal(raw, &chapters); err != nil {
		return nil, fmt.Errorf("decode chapters: %w", err)
	}

	files, err := fs.Glob(fsys, "games/*.json")
	if err != nil {
		return nil, err
	}
	games := make([]Game, 0, len(files))
	for _, name := range files {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var g Game
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		if g.Slug == "" {
			g.Slug = strings.TrimSuffix(path.Base(name), ".json")
		}
		if err := quiz.ValidateBank(g.Questions); err != nil {
			return nil, fmt.Errorf("game %s: %w", g.Slug, err)
		}
		games = append(games, g)
	}

	return newCatalog(chapters, games)
}

func newCatalog(chapters []Chapter, games []Game) (*Catalog, error) {
	sort.Slice(chapters, func(i, j int) bool { return chapters[i].Number < chapters[j].Number })
	for _, ch := range chapters {
		sort.SliceStable(ch.Topics, func(i, j int) bool { return ch.Topics[i].Order < ch.Topics[j].Order })
	}
	sort.SliceStable(games, func(i, j int) bool {
		if games[i].Chapter != games[j].Chapter {
			return games[i].Chapter < games[j].Chapter
		}
		return games[i].Slug < games[j].Slug
	})

	c := &Catalog{
		chapters: chapters,
		byNumber: make(map[int]int, len(chapters)),
		games:    games,
		bySlug:   make(map[string]int, len(games)),
	}
	for i, ch := range chapters {
		c.byNumber[ch.Number] = i
	}
	for i, g := range games {
		if _, dup := c.bySlug[g.Slug]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateGame, g.Slug)
		}
		c.bySlug[g.Slug] = i
	}
	return c, nil
}

func (c *Catalog) Chapters() []Chapter {
	out := make([]Chapter, len(c.chapters))
	copy(out, c.chapters)
	return out
}

func (c *Catalog) Chapter(number int) (Chapter, error) {
	i, ok := c.byNumber[number]
	if !ok {
		return Chapter{}, ErrChapterNotFound
	}
	return c.chapters[i], nil
}

// Navigation resolves a page path such as /chapters/6/scatterplots. Unknown
// chapters point back to the chapter index, unknown topics to the chapter home,
// and the first/last topic link back to the chapter home as well.
func (c *Catalog) Navigation(currentPath string) NavigationInfo {
	parts := strings.Split(currentPath, "/")
	number := -1
	if len(parts) > 2 {
		if n, err := strconv.Atoi(parts[2]); err == nil {
			number = n
		}
	}

	ch, err := c.Chapter(number)
	if err != nil {
		return NavigationInfo{ChapterHome: chaptersHome, ChapterTitle: "Chapters"}
	}

	nav := NavigationInfo{ChapterHome: ch.Slug, ChapterTitle: ch.Title}
	if len(parts) < 4 || parts[3] == "" {
		return nav
	}

	current := -1
	for i, t := range ch.Topics {
		if t.Slug == currentPath {
			current = i
			break
		}
	}
	if current < 0 {
		return nav
	}

	nav.CurrentTopicTitle = ch.Topics[current].Title
	nav.PreviousTopic = ch.Slug
	nav.NextTopic = ch.Slug
	if current > 0 {
		nav.PreviousTopic = ch.Topics[current-1].Slug
	}
	if current < len(ch.Topics)-1 {
		nav.NextTopic = ch.Topics[current+1].Slug
	}
	return nav
}

func (c *Catalog) Games() []Game {
	out := make([]Game, len(c.games))
	copy(out, c.games)
	return out
}

func (c *Catalog) Game(slug string) (Game, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Game{}, ErrGameNotFound
	}
	return c.games[i], nil
}

// Bank returns a private copy of the questions played in the given mode.
func (c *Catalog) Bank(slug string, mode Mode) ([]quiz.Question, error) {
	if mode == "" {
		mode = ModeComprehensive
	}
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	g, err := c.Game(slug)
	if err != nil {
		return nil, err
	}

	n := len(g.Questions)
	if mode == ModeQuick {
		n = quickCount(g)
	}
	bank := make([]quiz.Question, n)
	copy(bank, g.Questions[:n])
	return bank, nil
}

func quickCount(g Game) int {
	if g.QuickCount <= 0 || g.QuickCount > len(g.Questions) {
		return len(g.Questions)
	}
	return g.QuickCount
}

// Shuffle returns a reordered copy of bank. Choice order inside each question
// is left untouched.
func Shuffle(bank []quiz.Question, rnd *rand.Rand) []quiz.Question {
	out := make([]quiz.Question, len(bank))
	copy(out, bank)
	rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
