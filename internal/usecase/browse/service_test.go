package browse

import (
	"testing"

	"github.com/saradorri/gamecatalog/internal/domain"
	"github.com/saradorri/gamecatalog/internal/infrastructure/logger"
	"github.com/saradorri/gamecatalog/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
)

// Catalog fixture in title order. The ids are deliberately not aligned with
// the alphabetical order so the tests catch sorting by id instead of title.
var fixture = []struct {
	id        int
	title     string
	publisher string
	genres    []string
}{
	{435790, "10 Second Ninja X", "Curve Games", []string{"Action", "Indie"}},
	{1430180, "1000 Amps", "Brandon Brizzi", []string{"Indie", "Puzzle"}},
	{855010, "1v1", "Mookypoops", []string{"Action", "Indie"}},
	{242920, "Ashes of the Singularity: Escalation", "Stardew Entertainment", []string{"Strategy"}},
	{1228870, "Bartlow's Dread Machine", "Beep Games, Inc.", []string{"Action", "Adventure"}},
	{7940, "Call of Duty 4: Modern Warfare", "Activision", []string{"Action"}},
	{368260, "Mini Metro", "Dinosaur Polo Club", []string{"Casual", "Strategy"}},
	{283640, "Salt and Sanctuary", "Ska Studios", []string{"Action", "RPG"}},
	{306130, "The Elder Scrolls Online", "Bethesda Softworks", []string{"RPG"}},
	{1141030, "Them's Fightin' Herds", "Modus Games", []string{"Action", "Indie"}},
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo := memory.NewRepository()
	// Insert back to front so insertion order matches neither titles nor ids.
	for i := len(fixture) - 1; i >= 0; i-- {
		game, err := domain.NewGame(fixture[i].id, fixture[i].title)
		assert.NoError(t, err)
		game.SetPublisher(domain.NewPublisher(fixture[i].publisher))
		for _, name := range fixture[i].genres {
			game.AddGenre(domain.NewGenre(name))
		}
		assert.NoError(t, repo.AddGame(game))
	}
	return NewService(repo, logger.NewLogger("test", "debug"))
}

func pageIDs(page Page) []int {
	ids := make([]int, 0, len(page.Games))
	for _, game := range page.Games {
		ids = append(ids, game.ID)
	}
	return ids
}

func TestGetPageFirstWindow(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.GetPage(435790, 5, GenreAll, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int{435790, 1430180, 855010, 242920, 1228870}, pageIDs(page))
	assert.Nil(t, page.PreviousID, "first window has no previous page")
	assert.NotNil(t, page.NextID)
	assert.Equal(t, 7940, *page.NextID)
}

func TestGetPageLastWindow(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.GetPage(7940, 5, GenreAll, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int{7940, 368260, 283640, 306130, 1141030}, pageIDs(page))
	assert.NotNil(t, page.PreviousID)
	assert.Equal(t, 435790, *page.PreviousID)
	assert.Nil(t, page.NextID, "last window has no next page")
}

func TestGetPagePreviousClampedToFirst(t *testing.T) {
	svc := newTestService(t)

	// Anchor sits at index 2, less than a full window from the start, so the
	// previous anchor clamps to the very first game.
	page, err := svc.GetPage(855010, 5, GenreAll, nil)
	assert.NoError(t, err)
	assert.NotNil(t, page.PreviousID)
	assert.Equal(t, 435790, *page.PreviousID)
	assert.NotNil(t, page.NextID)
	assert.Equal(t, 283640, *page.NextID)
}

func TestGetPageShortTailWindow(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.GetPage(306130, 5, GenreAll, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int{306130, 1141030}, pageIDs(page))
	assert.NotNil(t, page.PreviousID)
	assert.Equal(t, 242920, *page.PreviousID)
	assert.Nil(t, page.NextID)
}

func TestGetPageUnknownAnchor(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.GetPage(999999, 5, GenreAll, nil)
	assert.NoError(t, err)
	assert.Empty(t, page.Games)
	assert.Nil(t, page.PreviousID)
	assert.Nil(t, page.NextID)
}

func TestGetPageEmptyCandidateList(t *testing.T) {
	svc := newTestService(t)

	// A non-nil empty candidate list means "search matched nothing", not
	// "use the whole catalog".
	page, err := svc.GetPage(435790, 5, GenreAll, []*domain.Game{})
	assert.NoError(t, err)
	assert.Empty(t, page.Games)
	assert.Nil(t, page.PreviousID)
	assert.Nil(t, page.NextID)
}

func TestGetPageGenreFilter(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.GetPage(435790, 3, "Action", nil)
	assert.NoError(t, err)
	assert.Equal(t, []int{435790, 855010, 1228870}, pageIDs(page))
	assert.Nil(t, page.PreviousID)
	assert.NotNil(t, page.NextID)
	assert.Equal(t, 7940, *page.NextID)
}

func TestGetPageInvalidPageSize(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetPage(435790, 0, GenreAll, nil)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidEntity))
	_, err = svc.GetPage(435790, -3, GenreAll, nil)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidEntity))
}

func TestGetPageTitleTiesBrokenByID(t *testing.T) {
	repo := memory.NewRepository()
	for _, id := range []int{30, 10, 20} {
		game, err := domain.NewGame(id, "Same Title")
		assert.NoError(t, err)
		assert.NoError(t, repo.AddGame(game))
	}
	svc := NewService(repo, logger.NewLogger("test", "debug"))

	page, err := svc.GetPage(10, 3, GenreAll, nil)
	assert.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, pageIDs(page))
}

func TestNavigationLinkInvariants(t *testing.T) {
	svc := newTestService(t)

	sorted := []int{435790, 1430180, 855010, 242920, 1228870, 7940, 368260, 283640, 306130, 1141030}
	for _, pageSize := range []int{1, 3, 5, 10, 25} {
		for index, anchorID := range sorted {
			page, err := svc.GetPage(anchorID, pageSize, GenreAll, nil)
			assert.NoError(t, err)

			if index == 0 {
				assert.Nil(t, page.PreviousID, "size %d anchor %d", pageSize, anchorID)
			} else {
				assert.NotNil(t, page.PreviousID, "size %d anchor %d", pageSize, anchorID)
			}
			if index+pageSize < len(sorted) {
				assert.NotNil(t, page.NextID, "size %d anchor %d", pageSize, anchorID)
				assert.Equal(t, sorted[index+pageSize], *page.NextID)
			} else {
				assert.Nil(t, page.NextID, "size %d anchor %d", pageSize, anchorID)
			}
			assert.Equal(t, sorted[index], page.Games[0].ID, "window starts at the anchor")
		}
	}
}

func TestFirstAnchorID(t *testing.T) {
	svc := newTestService(t)

	id, ok, err := svc.FirstAnchorID(GenreAll, nil)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 435790, id)

	id, ok, err = svc.FirstAnchorID("Puzzle", nil)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1430180, id)

	_, ok, err = svc.FirstAnchorID("Sports", nil)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSearchGamesByTitle(t *testing.T) {
	svc := newTestService(t)

	games, err := svc.SearchGames("NINJA", SearchByTitle, GenreAll)
	assert.NoError(t, err)
	assert.Len(t, games, 1)
	assert.Equal(t, 435790, games[0].ID)
}

func TestSearchGamesByPublisher(t *testing.T) {
	svc := newTestService(t)

	games, err := svc.SearchGames("activision", SearchByPublisher, GenreAll)
	assert.NoError(t, err)
	assert.Len(t, games, 1)
	assert.Equal(t, 7940, games[0].ID)
}

func TestSearchGamesDefaultCriteriaMatchesEitherField(t *testing.T) {
	svc := newTestService(t)

	games, err := svc.SearchGames("games", "", GenreAll)
	assert.NoError(t, err)
	// "Curve Games", "Beep Games, Inc." and "Modus Games" by publisher.
	assert.Len(t, games, 3)
}

func TestSearchGamesGenreNarrows(t *testing.T) {
	svc := newTestService(t)

	games, err := svc.SearchGames("1", SearchByTitle, "Puzzle")
	assert.NoError(t, err)
	assert.Len(t, games, 1)
	assert.Equal(t, 1430180, games[0].ID)
}

func TestSearchGamesBlankQuery(t *testing.T) {
	svc := newTestService(t)

	games, err := svc.SearchGames("   ", SearchByTitle, GenreAll)
	assert.NoError(t, err)
	assert.Nil(t, games)
}

func TestGetGenresSortedDistinct(t *testing.T) {
	svc := newTestService(t)

	genres, err := svc.GetGenres()
	assert.NoError(t, err)
	assert.Equal(t, []string{"Action", "Adventure", "Casual", "Indie", "Puzzle", "RPG", "Strategy"}, genres)
}

func TestGetGenreCount(t *testing.T) {
	svc := newTestService(t)

	count, err := svc.GetGenreCount("Action")
	assert.NoError(t, err)
	assert.Equal(t, 6, count)

	count, err = svc.GetGenreCount("Sports")
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestFirstAndLastGameByTitle(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.GetFirstGameByTitle()
	assert.NoError(t, err)
	assert.Equal(t, 435790, first.ID)

	last, err := svc.GetLastGameByTitle()
	assert.NoError(t, err)
	assert.Equal(t, 1141030, last.ID)
}

func TestFirstAndLastGameByTitleEmptyCatalog(t *testing.T) {
	svc := NewService(memory.NewRepository(), logger.NewLogger("test", "debug"))

	first, err := svc.GetFirstGameByTitle()
	assert.NoError(t, err)
	assert.Nil(t, first)
	last, err := svc.GetLastGameByTitle()
	assert.NoError(t, err)
	assert.Nil(t, last)
}
