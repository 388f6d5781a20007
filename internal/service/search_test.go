package service

import (
	"context"
	"errors"
	"testing"

	"placefinder/internal/config"
	"placefinder/internal/googlemaps"
	"placefinder/internal/model"
	repoMocks "placefinder/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPlacesClient struct {
	mock.Mock
}

func (m *mockPlacesClient) Geocode(ctx context.Context, address string) (model.Coordinates, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(model.Coordinates), args.Error(1)
}

func (m *mockPlacesClient) NearbySearch(ctx context.Context, q googlemaps.NearbyQuery) ([]googlemaps.Place, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]googlemaps.Place), args.Error(1)
}

func ratingPtr(v float64) *float64 { return &v }

func place(name string, rating *float64, vicinity string, lat, lng float64) googlemaps.Place {
	return googlemaps.Place{
		Name:     name,
		Rating:   rating,
		Vicinity: vicinity,
		Geometry: googlemaps.Geometry{Location: googlemaps.LatLng{Lat: lat, Lng: lng}},
	}
}

func defaultSearchConfig() config.SearchConfig {
	return config.SearchConfig{RadiusMeters: 1000, MinRating: 4.0, MapZoom: 15}
}

func TestSearchService_Search(t *testing.T) {
	ctx := context.Background()
	kyoto := model.Coordinates{Lat: 35.0, Lng: 135.0}

	tests := []struct {
		name       string
		query      Query
		setupMocks func(mPlaces *mockPlacesClient)
		wantErr    error
		wantVenues []string
	}{
		{
			name:  "filters out venues below the minimum rating",
			query: Query{Address: "Kyoto Station"},
			setupMocks: func(mPlaces *mockPlacesClient) {
				mPlaces.On("Geocode", ctx, "Kyoto Station").Return(kyoto, nil)
				mPlaces.On("NearbySearch", ctx, googlemaps.NearbyQuery{
					Lat: 35.0, Lng: 135.0, RadiusMeters: 1000,
				}).Return([]googlemaps.Place{
					place("Good", ratingPtr(4.5), "1 Main St", 35.1, 135.1),
					place("Mediocre", ratingPtr(3.9), "2 Main St", 35.2, 135.2),
				}, nil)
			},
			wantVenues: []string{"Good"},
		},
		{
			name:  "filter is stable over the upstream order",
			query: Query{Address: "Kyoto Station"},
			setupMocks: func(mPlaces *mockPlacesClient) {
				mPlaces.On("Geocode", ctx, "Kyoto Station").Return(kyoto, nil)
				mPlaces.On("NearbySearch", ctx, mock.Anything).Return([]googlemaps.Place{
					place("First", ratingPtr(4.0), "", 0, 0),
					place("Skipped", ratingPtr(1.0), "", 0, 0),
					place("Second", ratingPtr(4.9), "", 0, 0),
					place("Third", ratingPtr(4.2), "", 0, 0),
				}, nil)
			},
			wantVenues: []string{"First", "Second", "Third"},
		},
		{
			name:  "missing rating counts as zero and is excluded",
			query: Query{Address: "Kyoto Station"},
			setupMocks: func(mPlaces *mockPlacesClient) {
				mPlaces.On("Geocode", ctx, "Kyoto Station").Return(kyoto, nil)
				mPlaces.On("NearbySearch", ctx, mock.Anything).Return([]googlemaps.Place{
					place("Unrated", nil, "", 0, 0),
					place("Rated", ratingPtr(4.1), "", 0, 0),
				}, nil)
			},
			wantVenues: []string{"Rated"},
		},
		{
			name:  "empty upstream results yields empty venue list",
			query: Query{Address: "Kyoto Station"},
			setupMocks: func(mPlaces *mockPlacesClient) {
				mPlaces.On("Geocode", ctx, "Kyoto Station").Return(kyoto, nil)
				mPlaces.On("NearbySearch", ctx, mock.Anything).Return([]googlemaps.Place{}, nil)
			},
			wantVenues: []string{},
		},
		{
			name:       "empty address makes no network calls",
			query:      Query{Address: "   "},
			setupMocks: func(mPlaces *mockPlacesClient) {},
			wantErr:    ErrAddressRequired,
		},
		{
			name:  "geocode failure stops the pipeline",
			query: Query{Address: "nowhere at all"},
			setupMocks: func(mPlaces *mockPlacesClient) {
				mPlaces.On("Geocode", ctx, "nowhere at all").
					Return(model.Coordinates{}, &googlemaps.APIError{Op: "geocode", Status: "ZERO_RESULTS", Message: "address could not be resolved"})
			},
			wantErr: nil, // checked below via ErrorAs
		},
		{
			name:  "keyword and type forwarded to the client",
			query: Query{Address: "Kyoto Station", Keyword: "ramen", PlaceType: "restaurant"},
			setupMocks: func(mPlaces *mockPlacesClient) {
				mPlaces.On("Geocode", ctx, "Kyoto Station").Return(kyoto, nil)
				mPlaces.On("NearbySearch", ctx, googlemaps.NearbyQuery{
					Lat: 35.0, Lng: 135.0, RadiusMeters: 1000,
					Keyword: "ramen", PlaceType: "restaurant",
				}).Return([]googlemaps.Place{}, nil)
			},
			wantVenues: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mPlaces := new(mockPlacesClient)
			tt.setupMocks(mPlaces)
			svc := NewSearchService(mPlaces, nil, defaultSearchConfig())

			res, err := svc.Search(ctx, tt.query)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
			case tt.wantVenues == nil:
				var apiErr *googlemaps.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Nil(t, res)
			default:
				require.NoError(t, err)
				require.NotNil(t, res)
				names := make([]string, 0, len(res.Venues))
				for _, v := range res.Venues {
					assert.GreaterOrEqual(t, v.Rating, 4.0)
					names = append(names, v.Name)
				}
				assert.Equal(t, tt.wantVenues, names)
			}

			mPlaces.AssertExpectations(t)
		})
	}
}

func TestSearchService_Search_MapsVenueFields(t *testing.T) {
	ctx := context.Background()
	mPlaces := new(mockPlacesClient)
	mPlaces.On("Geocode", ctx, "Kyoto Station").Return(model.Coordinates{Lat: 35.0, Lng: 135.0}, nil)
	mPlaces.On("NearbySearch", ctx, mock.Anything).Return([]googlemaps.Place{
		place("Ramen Ichi", ratingPtr(4.5), "12 Station Rd", 35.01, 135.02),
	}, nil)

	svc := NewSearchService(mPlaces, nil, defaultSearchConfig())
	res, err := svc.Search(ctx, Query{Address: "Kyoto Station"})

	require.NoError(t, err)
	require.Len(t, res.Venues, 1)
	v := res.Venues[0]
	assert.Equal(t, "Ramen Ichi", v.Name)
	assert.Equal(t, 4.5, v.Rating)
	assert.Equal(t, "12 Station Rd", v.Address)
	assert.Equal(t, 35.01, v.Lat)
	assert.Equal(t, 135.02, v.Lng)
	assert.Equal(t, model.Coordinates{Lat: 35.0, Lng: 135.0}, res.Center)
}

func TestSearchService_Search_History(t *testing.T) {
	ctx := context.Background()
	kyoto := model.Coordinates{Lat: 35.0, Lng: 135.0}

	t.Run("records the query and result count", func(t *testing.T) {
		mPlaces := new(mockPlacesClient)
		mPlaces.On("Geocode", ctx, "Kyoto Station").Return(kyoto, nil)
		mPlaces.On("NearbySearch", ctx, mock.Anything).Return([]googlemaps.Place{
			place("Good", ratingPtr(4.5), "", 0, 0),
			place("Bad", ratingPtr(2.0), "", 0, 0),
		}, nil)

		mRepo := new(repoMocks.MockSearchHistoryRepository)
		mRepo.On("Create", ctx, mock.MatchedBy(func(rec *model.SearchRecord) bool {
			return rec.ID != "" &&
				rec.Address == "Kyoto Station" &&
				rec.Keyword == "ramen" &&
				rec.Lat == 35.0 && rec.Lng == 135.0 &&
				rec.ResultCount == 1
		})).Return(&model.SearchRecord{ID: "stored"}, nil)

		svc := NewSearchService(mPlaces, mRepo, defaultSearchConfig())
		_, err := svc.Search(ctx, Query{Address: "Kyoto Station", Keyword: "ramen"})

		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("insert failure does not fail the search", func(t *testing.T) {
		mPlaces := new(mockPlacesClient)
		mPlaces.On("Geocode", ctx, "Kyoto Station").Return(kyoto, nil)
		mPlaces.On("NearbySearch", ctx, mock.Anything).Return([]googlemaps.Place{}, nil)

		mRepo := new(repoMocks.MockSearchHistoryRepository)
		mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down"))

		svc := NewSearchService(mPlaces, mRepo, defaultSearchConfig())
		res, err := svc.Search(ctx, Query{Address: "Kyoto Station"})

		assert.NoError(t, err)
		assert.NotNil(t, res)
	})
}

func TestSearchService_Recent(t *testing.T) {
	ctx := context.Background()

	t.Run("nil history store yields empty list", func(t *testing.T) {
		svc := NewSearchService(new(mockPlacesClient), nil, defaultSearchConfig())
		recs, err := svc.Recent(ctx, 10)

		assert.NoError(t, err)
		assert.NotNil(t, recs)
		assert.Empty(t, recs)
	})

	t.Run("delegates with default limit", func(t *testing.T) {
		mRepo := new(repoMocks.MockSearchHistoryRepository)
		mRepo.On("Recent", ctx, 10).Return([]model.SearchRecord{{ID: "a"}}, nil)

		svc := NewSearchService(new(mockPlacesClient), mRepo, defaultSearchConfig())
		recs, err := svc.Recent(ctx, 0)

		assert.NoError(t, err)
		assert.Len(t, recs, 1)
		mRepo.AssertExpectations(t)
	})
}
