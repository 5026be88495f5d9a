package web

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"tilepuzzle/src/logx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), A: 0xff})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newGameForm(t *testing.T, file []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		fw, err := mw.CreateFormFile("image", "upload")
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == nil {
		r = httptest.NewRequest(method, path, nil)
	} else {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = httptest.NewRequest(method, path, bytes.NewReader(data))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) gameView {
	t.Helper()
	var v gameView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func createGame(t *testing.T, h http.Handler, fields map[string]string) gameView {
	t.Helper()
	body, ct := newGameForm(t, pngBytes(t), fields)
	r := httptest.NewRequest(http.MethodPost, "/games", body)
	r.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeView(t, w)
}

func TestCreateGame(t *testing.T) {
	h := NewServer(logx.NewNop()).Routes()
	v := createGame(t, h, map[string]string{"grid": "3", "container": "300", "seed": "7"})
	assert.NotEmpty(t, v.Session)
	assert.Equal(t, "playing", v.Status)
	assert.Len(t, v.Game.Pieces, 9)
	assert.Equal(t, 100.0, v.Game.Grid.CellSize())

	w := do(t, h, http.MethodGet, "/games/"+v.Session, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeView(t, w)
	assert.Equal(t, v.Game.ID, got.Game.ID)
	assert.Equal(t, v.Game.Pieces, got.Game.Pieces)
}

func TestCreateGameRejects(t *testing.T) {
	h := NewServer(logx.NewNop()).Routes()

	body, ct := newGameForm(t, []byte("just some text"), map[string]string{"grid": "3"})
	r := httptest.NewRequest(http.MethodPost, "/games", body)
	r.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	body, ct = newGameForm(t, pngBytes(t), map[string]string{"grid": "9"})
	r = httptest.NewRequest(http.MethodPost, "/games", body)
	r.Header.Set("Content-Type", ct)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid grid")
}

func TestCreateGameRejectsContainer(t *testing.T) {
	h := NewServer(logx.NewNop()).Routes()
	for _, container := range []string{"0", "-10", "60000"} {
		body, ct := newGameForm(t, nil, map[string]string{"container": container})
		r := httptest.NewRequest(http.MethodPost, "/games", body)
		r.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code, container)
		assert.Contains(t, w.Body.String(), "invalid grid", container)
	}
}

func TestCreateGameWithoutImage(t *testing.T) {
	h := NewServer(logx.NewNop()).Routes()
	r := httptest.NewRequest(http.MethodPost, "/games", strings.NewReader("grid=4&container=200"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Len(t, decodeView(t, w).Game.Pieces, 16)
}

func TestDragOverHTTP(t *testing.T) {
	h := NewServer(logx.NewNop()).Routes()
	v := createGame(t, h, map[string]string{"grid": "3", "container": "300", "seed": "7"})

	idx := -1
	for i, p := range v.Game.Pieces {
		if p.Current != p.Target {
			idx = i
			break
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	p := v.Game.Pieces[idx]
	base := "/games/" + v.Session

	w := do(t, h, http.MethodPost, base+"/down", pointerReq{Index: idx, X: p.Current.X + 10, Y: p.Current.Y + 10})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeView(t, w).Game.Drag.Active)

	w = do(t, h, http.MethodPost, base+"/move", pointerReq{X: p.Target.X + 12, Y: p.Target.Y + 8})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodPost, base+"/up", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeView(t, w)
	assert.False(t, got.Game.Drag.Active)
	assert.True(t, got.Game.Pieces[idx].Correct)
	assert.Equal(t, p.Target, got.Game.Pieces[idx].Current)
	assert.Equal(t, 1, got.Game.Moves)
	assert.GreaterOrEqual(t, got.Correct, 1)

	w = do(t, h, http.MethodPost, base+"/undo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, p.Current, decodeView(t, w).Game.Pieces[idx].Current)

	w = do(t, h, http.MethodPost, base+"/down", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTickExpires(t *testing.T) {
	h := NewServer(logx.NewNop()).Routes()
	v := createGame(t, h, map[string]string{"grid": "3", "duration": "2", "seed": "1"})
	assert.Equal(t, 2, v.Game.TimeLeft)

	w := do(t, h, http.MethodPost, "/games/"+v.Session+"/tick", nil)
	assert.Equal(t, "playing", decodeView(t, w).Status)
	w = do(t, h, http.MethodPost, "/games/"+v.Session+"/tick", nil)
	got := decodeView(t, w)
	assert.Equal(t, "expired", got.Status)
	assert.Zero(t, got.Game.TimeLeft)
}

func TestDeleteGame(t *testing.T) {
	h := NewServer(logx.NewNop()).Routes()
	v := createGame(t, h, nil)

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/games/"+v.Session, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/games/"+v.Session, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/games/"+v.Session, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/games/nope/tick", nil).Code)
}
