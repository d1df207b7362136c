package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"doctor-directory/internal/delivery/http/view"
	"doctor-directory/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const testPayload = `[
  {"id": "1", "name": "Dr. A", "fees": "₹500", "experience": "10 Years", "specialities": [{"name": "Dentist"}]},
  {"id": "2", "name": "Dr. B", "fees": "₹300", "experience": "5 Years", "specialities": [{"name": "Cardiology"}, {"name": "Dentist"}]},
  {"id": "3", "name": "Dr. Bhavna", "fees": "₹700", "experience": "2 Years", "video_consult": true, "in_clinic": false}
]`

type stubSource struct {
	payload []byte
	err     error
}

func (s *stubSource) Fetch(ctx context.Context) ([]byte, error) {
	return s.payload, s.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newUsecase(err error) usecase.DoctorDirectoryUsecase {
	source := &stubSource{payload: []byte(testPayload)}
	if err != nil {
		source = &stubSource{err: err}
	}
	return usecase.NewDoctorDirectoryUsecase(quietLogger(), source)
}

var errUpstreamDown = errors.New("upstream down")

func newPageHandler(t *testing.T, urlSync bool, err error) *PageHandler {
	t.Helper()
	renderer, rerr := view.NewRenderer()
	require.NoError(t, rerr)
	return NewPageHandler(newUsecase(err), renderer, urlSync, quietLogger())
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
