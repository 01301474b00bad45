package httpadapter

import (
	"encoding/json"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"

	"salon-ads/internal/core/domain"
	"salon-ads/internal/core/port"
)

// Multipart requests carry the JSON document in the "payload" field and
// files in parts referenced by name from media entries.
const (
	payloadField    = "payload"
	multipartMemory = 32 << 20
)

type mediaRequest struct {
	URL       string `json:"url"`
	File      string `json:"file"`
	SizeClass string `json:"size_class"`
	IsPrimary bool   `json:"is_primary"`
}

type createAdRequest struct {
	Title     string              `json:"title"`
	Kind      string              `json:"ad_type"`
	SalonID   *int64              `json:"salon_id"`
	Status    string              `json:"status"`
	Schedules []int               `json:"schedules"`
	Targets   []port.TargetInput  `json:"targets"`
	Media     []mediaRequest      `json:"media"`
	Campaign  *port.CampaignInput `json:"campaign"`
}

type updateAdRequest struct {
	Title     port.Optional[string]              `json:"title"`
	Schedules port.Optional[[]int]               `json:"schedules"`
	Targets   port.Optional[[]port.TargetInput]  `json:"targets"`
	Media     port.Optional[[]mediaRequest]      `json:"media"`
	Campaign  port.Optional[*port.CampaignInput] `json:"campaign"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// requestFiles hands out uploaded parts and closes them once the request
// is done.
type requestFiles struct {
	form   *multipart.Form
	opened []multipart.File
}

func (f *requestFiles) open(name string) (*port.MediaUpload, error) {
	if f.form == nil || len(f.form.File[name]) == 0 {
		return nil, fmt.Errorf("%w: missing file part %q", domain.ErrInvalidArgument, name)
	}
	fh := f.form.File[name][0]
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open file part %q: %w", name, err)
	}
	f.opened = append(f.opened, file)
	return &port.MediaUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        file,
	}, nil
}

func (f *requestFiles) Close() {
	for _, file := range f.opened {
		_ = file.Close()
	}
	if f.form != nil {
		_ = f.form.RemoveAll()
	}
}

// decodePayload reads dst from a JSON body or from the payload field of a
// multipart form.
func (h *Handler) decodePayload(w http.ResponseWriter, r *http.Request, dst any) (*requestFiles, error) {
	h.limitBody(w, r)
	files := &requestFiles{}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return files, invalidPayload(err)
		}
		return files, nil
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return files, invalidPayload(err)
	}
	files.form = r.MultipartForm
	payload := r.MultipartForm.Value[payloadField]
	if len(payload) == 0 {
		return files, fmt.Errorf("%w: missing %q field", domain.ErrInvalidArgument, payloadField)
	}
	if err := json.Unmarshal([]byte(payload[0]), dst); err != nil {
		return files, invalidPayload(err)
	}
	return files, nil
}

// limitBody caps the request body at the configured upload size.
func (h *Handler) limitBody(w http.ResponseWriter, r *http.Request) {
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}
}

func invalidPayload(err error) error {
	return fmt.Errorf("%w: invalid payload: %w", domain.ErrInvalidArgument, err)
}

func toMediaInputs(reqs []mediaRequest, files *requestFiles) ([]port.MediaInput, error) {
	out := make([]port.MediaInput, 0, len(reqs))
	for _, m := range reqs {
		in := port.MediaInput{
			URL:       m.URL,
			SizeClass: domain.SizeClass(m.SizeClass),
			IsPrimary: m.IsPrimary,
		}
		if m.File != "" {
			up, err := files.open(m.File)
			if err != nil {
				return nil, err
			}
			in.Upload = up
		}
		out = append(out, in)
	}
	return out, nil
}

func (req createAdRequest) toInput(files *requestFiles) (port.CreateAdInput, error) {
	media, err := toMediaInputs(req.Media, files)
	if err != nil {
		return port.CreateAdInput{}, err
	}
	return port.CreateAdInput{
		Title:    req.Title,
		Kind:     domain.AdKind(req.Kind),
		SalonID:  req.SalonID,
		Status:   domain.AdStatus(req.Status),
		Hours:    req.Schedules,
		Targets:  req.Targets,
		Media:    media,
		Campaign: req.Campaign,
	}, nil
}

func (req updateAdRequest) toInput(files *requestFiles) (port.UpdateAdInput, error) {
	in := port.UpdateAdInput{
		Title:    req.Title,
		Hours:    req.Schedules,
		Targets:  req.Targets,
		Campaign: req.Campaign,
	}
	if req.Media.Present {
		media, err := toMediaInputs(req.Media.Value, files)
		if err != nil {
			return port.UpdateAdInput{}, err
		}
		in.Media = port.Some(media)
	}
	return in, nil
}
