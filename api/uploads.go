package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"

	"ezforum-cli/shared"
	"ezforum-cli/types"
)

const (
	uploadPath      = "/api/uploads"
	uploadFieldName = "file"
)

// UploadsApi sends multipart uploads. It bypasses the JSON pipeline: no
// toasts, and an unauthorized response does not clear the session.
type UploadsApi struct {
	t *Transport
}

func (a *UploadsApi) UploadFile(ctx context.Context, filePath string) (*shared.ApiResponse[shared.UploadResult], *shared.ApiError) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeUpload, Err: fmt.Errorf("error opening file: %v", err)}
	}
	defer f.Close()

	return a.UploadReader(ctx, filepath.Base(filePath), f)
}

// UploadReader uploads the contents of r under the given file name.
func (a *UploadsApi) UploadReader(ctx context.Context, name string, r io.Reader) (*shared.ApiResponse[shared.UploadResult], *shared.ApiError) {
	uploadUrl := a.t.baseUrl + uploadPath
	log.Println("Upload URL:", uploadUrl)

	body, contentType, err := multipartBody(name, r)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeUpload, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadUrl, body)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeUpload, Err: fmt.Errorf("error creating request: %v", err)}
	}
	req.Header.Set("Content-Type", contentType)
	if token := a.t.store.Get(types.StorageKeyToken); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.t.client.Do(req)
	if err != nil {
		log.Printf("Upload failed: %v\n", err)
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeUpload, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("Upload failed with status %d\n", resp.StatusCode)
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeUpload, Status: resp.StatusCode, Msg: shared.MsgUploadFailed}
	}

	var res shared.ApiResponse[shared.UploadResult]
	err = json.NewDecoder(resp.Body).Decode(&res)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeUpload, Status: resp.StatusCode, Msg: "error decoding upload response", Err: err}
	}

	return &res, nil
}

func multipartBody(name string, r io.Reader) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	partType := mime.TypeByExtension(filepath.Ext(name))
	if partType == "" {
		partType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, uploadFieldName, escapeQuotes(name)))
	h.Set("Content-Type", partType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("error creating form part: %v", err)
	}

	_, err = io.Copy(part, r)
	if err != nil {
		return nil, "", fmt.Errorf("error reading file: %v", err)
	}

	err = w.Close()
	if err != nil {
		return nil, "", fmt.Errorf("error closing form: %v", err)
	}

	return &buf, w.FormDataContentType(), nil
}

func escapeQuotes(s string) string {
	var out bytes.Buffer
	for _, c := range s {
		if c == '"' || c == '\\' {
			out.WriteByte('\\')
		}
		out.WriteRune(c)
	}
	return out.String()
}
