package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"finitefield.org/shoe-catalog/internal/catalog/shoes"
	"finitefield.org/shoe-catalog/internal/catalog/testutil"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func fixtureService() *shoes.StaticService {
	sale := int64(5000)
	return shoes.NewStaticService([]shoes.Listing{
		{
			Slug: "air-max", Name: "Air Max", ImageSrc: "/img/air-max.jpg",
			Price: 10000, SalePrice: &sale,
			ReleaseDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), NumOfColors: 3,
			Description: "A **classic** runner.",
		},
		{
			Slug: "trainer", Name: "Trainer", ImageSrc: "/img/trainer.jpg",
			Price: 8000, ReleaseDate: fixedNow.AddDate(0, 0, -5), NumOfColors: 1,
		},
		{
			Slug: "court", Name: "Court", ImageSrc: "/img/court.jpg",
			Price: 7500, ReleaseDate: fixedNow.AddDate(0, 0, -400), NumOfColors: 2,
		},
	})
}

func get(t *testing.T, url string, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestIndexRendersCatalogGrid(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithShoesService(fixtureService()), testutil.WithClock(fixedNow))

	resp, body := get(t, ts.URL+"/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "Shoes | Sole Catalog", doc.Find("title").Text())

	cards := doc.Find("[data-shoe-grid] article.shoe-card")
	require.Equal(t, 3, cards.Length())

	variants := map[string]string{}
	cards.Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Parent().Attr("href")
		variants[href] = s.AttrOr("data-variant", "")
	})
	require.Equal(t, map[string]string{
		"/shoe/air-max": "on-sale",
		"/shoe/trainer": "new-release",
		"/shoe/court":   "default",
	}, variants)
}

func TestIndexSortsByPrice(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithShoesService(fixtureService()), testutil.WithClock(fixedNow))

	resp, body := get(t, ts.URL+"/?sort=price", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := testutil.ParseHTML(t, body)
	var names []string
	doc.Find("[data-shoe-grid] h3").Each(func(_ int, s *goquery.Selection) {
		names = append(names, s.Text())
	})
	require.Equal(t, []string{"Air Max", "Court", "Trainer"}, names)
	require.Equal(t, "Price", doc.Find(".catalog-sort__option.is-active").Text())
}

func TestDetailPageRendersListing(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithShoesService(fixtureService()), testutil.WithClock(fixedNow))

	resp, body := get(t, ts.URL+"/shoe/air-max", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "Air Max | Sole Catalog", doc.Find("title").Text())
	require.Equal(t, "$100.00", doc.Find("[data-price]").Text())
	require.Equal(t, "$50.00", doc.Find("[data-sale-price]").Text())
	require.Equal(t, "3 Colors", doc.Find("[data-colors]").Text())
	require.Equal(t, "classic", doc.Find("[data-description] strong").Text())
}

func TestDetailPageUnknownSlug(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithShoesService(fixtureService()))

	resp, _ := get(t, ts.URL+"/shoe/missing", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCardFragmentRequiresHTMX(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithShoesService(fixtureService()), testutil.WithClock(fixedNow))

	resp, _ := get(t, ts.URL+"/fragments/shoes/trainer/card", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := get(t, ts.URL+"/fragments/shoes/trainer/card", map[string]string{"HX-Request": "true"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 0, doc.Find("title").Length(), "fragment must not include the page shell")
	article := doc.Find("article.shoe-card")
	require.Equal(t, "new-release", article.AttrOr("data-variant", ""))
	require.Contains(t, article.Find("[data-flag]").AttrOr("style", ""), "visibility:hidden")
	require.Equal(t, "1 Color", article.Find("[data-colors]").Text())
}

func TestServiceFailureReturnsBadGateway(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithShoesService(failingService{}))

	resp, _ := get(t, ts.URL+"/", nil)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	resp, _ = get(t, ts.URL+"/shoe/anything", nil)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestHealthzAndStaticAssets(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, body := get(t, ts.URL+"/healthz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", string(body))

	resp, body = get(t, ts.URL+"/public/static/catalog.css", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), ".shoe-card__flag")
}

type failingService struct{}

func (failingService) List(context.Context, shoes.Sort) ([]shoes.Listing, error) {
	return nil, errors.New("catalog unavailable")
}

func (failingService) Get(context.Context, string) (shoes.Listing, error) {
	return shoes.Listing{}, errors.New("catalog unavailable")
}
