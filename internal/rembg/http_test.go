package rembg

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeServer mimics `rembg s`: it echoes the upload prefixed with the model name
func newFakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST(RemovePath, func(c *gin.Context) {
		fh, err := c.FormFile(FileField)
		if err != nil {
			c.String(http.StatusBadRequest, "missing file")
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		defer func() {
			_ = f.Close()
		}()
		data, err := io.ReadAll(f)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		if string(data) == "corrupt" {
			c.String(http.StatusInternalServerError, "cannot identify image file")
			return
		}
		model := c.DefaultPostForm(ModelField, "default")
		c.Data(http.StatusOK, "image/png", append([]byte(model+":"), data...))
	})
	r.POST("/slow"+RemovePath, func(c *gin.Context) {
		time.Sleep(200 * time.Millisecond)
		c.Data(http.StatusOK, "image/png", []byte("late"))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPRemover_Remove(t *testing.T) {
	t.Parallel()
	srv := newFakeServer(t)

	tests := []struct {
		name       string
		model      string
		input      string
		want       string
		wantErrMsg string
	}{
		{name: "with model", model: "u2net", input: "jpegbytes", want: "u2net:jpegbytes"},
		{name: "engine default model", model: "", input: "pngbytes", want: "default:pngbytes"},
		{name: "server error", model: "u2net", input: "corrupt", wantErrMsg: "cannot identify image file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remover := NewHTTPRemover(srv.URL+"/", tt.model, 0)
			got, err := remover.Remove(context.Background(), []byte(tt.input))
			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				assert.Contains(t, err.Error(), "500")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestHTTPRemover_Timeout(t *testing.T) {
	t.Parallel()
	srv := newFakeServer(t)

	remover := NewHTTPRemover(srv.URL+"/slow", "", 50*time.Millisecond)
	_, err := remover.Remove(context.Background(), []byte("img"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "do request"))
}

func TestHTTPRemover_Unreachable(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPRemover(url, "", time.Second).Remove(context.Background(), []byte("img"))
	assert.Error(t, err)
}

func TestNewHTTPRemover_Defaults(t *testing.T) {
	t.Parallel()
	remover := NewHTTPRemover("http://localhost:7000///", "u2net", 0)
	assert.Equal(t, "http://localhost:7000", remover.baseURL)
	assert.Equal(t, DefaultHTTPTimeout, remover.client.Timeout)
}
