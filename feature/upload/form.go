package upload

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"strings"
)

// Attachment is one file part read out of a multipart form. The payload is
// fully buffered so that uploads always start from the beginning of the
// file, regardless of any prior consumption of the request body.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// FileField groups the attachments submitted under one form field name, in
// submission order.
type FileField struct {
	Name  string
	Files []Attachment
}

// Form is the file-bearing view of a multipart request. Fields are ordered
// by the first appearance of each field name in the body; plain value parts
// (no filename parameter) are not represented.
type Form struct {
	Fields []FileField
}

// Empty reports whether the form carried no file fields.
func (f *Form) Empty() bool {
	return len(f.Fields) == 0
}

// ParseForm scans a multipart body and collects its file attachments.
//
// The stock form accessors expose parts as an unordered map, which would
// lose the submission order the response must preserve, so the body is
// walked part by part instead. A part counts as a file attachment when its
// Content-Disposition carries a filename parameter, even an empty one; that
// matches how browsers mark file inputs with no selected file.
//
// A non-multipart body (or one with no boundary) yields an empty form, not
// an error. A body that fails mid-scan is reported as an error.
func ParseForm(contentType string, body io.Reader) (*Form, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return &Form{}, nil
	}
	boundary := params["boundary"]
	if boundary == "" {
		return &Form{}, nil
	}

	form := &Form{}
	index := make(map[string]int)

	reader := multipart.NewReader(body, boundary)
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		disposition, dparams, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
		if err != nil || disposition != "form-data" {
			part.Close()
			continue
		}
		filename, isFile := dparams["filename"]
		if !isFile {
			// Plain form value, not a file.
			part.Close()
			continue
		}

		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			return nil, err
		}

		name := dparams["name"]
		i, seen := index[name]
		if !seen {
			i = len(form.Fields)
			index[name] = i
			form.Fields = append(form.Fields, FileField{Name: name})
		}
		form.Fields[i].Files = append(form.Fields[i].Files, Attachment{
			Filename:    filename,
			ContentType: part.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return form, nil
}
