package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Totarae/FaleProxy/internal/fetcher"
	"github.com/Totarae/FaleProxy/internal/mocks"
	"github.com/Totarae/FaleProxy/internal/service"
)

func TestFetchAndTransform_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := mocks.NewMockFetcher(ctrl)
	tr := mocks.NewMockHTMLTransformer(ctrl)

	f.EXPECT().Fetch(gomock.Any(), "https://example.com").Return([]byte("<p>Yale</p>"), nil)
	tr.EXPECT().Transform(gomock.Any()).DoAndReturn(func(r io.Reader) (string, error) {
		b, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "<p>Yale</p>", string(b))
		return "<p>Fale</p>", nil
	})

	s := service.NewProxyService(f, tr, zap.NewNop())
	got, err := s.FetchAndTransform(context.Background(), "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "<p>Fale</p>", got)
}

func TestFetchAndTransform_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := mocks.NewMockFetcher(ctrl)
	tr := mocks.NewMockHTMLTransformer(ctrl)

	fetchErr := &fetcher.FetchError{URL: "https://nonexistent.invalid", Err: errors.New("no such host")}
	f.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, fetchErr)
	tr.EXPECT().Transform(gomock.Any()).Times(0)

	s := service.NewProxyService(f, tr, zap.NewNop())
	got, err := s.FetchAndTransform(context.Background(), "https://nonexistent.invalid")

	assert.Empty(t, got)
	var fe *fetcher.FetchError
	assert.True(t, errors.As(err, &fe))
}

func TestFetchAndTransform_TransformError(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := mocks.NewMockFetcher(ctrl)
	tr := mocks.NewMockHTMLTransformer(ctrl)

	cause := errors.New("render failed")
	f.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return([]byte("<p></p>"), nil)
	tr.EXPECT().Transform(gomock.Any()).Return("", cause)

	s := service.NewProxyService(f, tr, zap.NewNop())
	_, err := s.FetchAndTransform(context.Background(), "https://example.com")

	var te *service.TransformError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "https://example.com", te.URL)
	assert.ErrorIs(t, err, cause)
}
