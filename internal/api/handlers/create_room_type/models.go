package create_room_type

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/m04kA/HLB-AdminService/internal/service/rooms/models"
)

// maxFormMemory лимит памяти на разбор multipart-формы, остальное уходит на диск
const maxFormMemory = 32 << 20

// parseForm разбирает multipart-форму создания типа комнаты.
// amenities и roomNumbers приходят JSON-массивами в строковых полях,
// фотографии — файлами в поле photos.
func parseForm(r *http.Request) (*models.CreateRoomTypeRequest, []multipart.File, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return nil, nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	req := &models.CreateRoomTypeRequest{
		Name: r.FormValue("name"),
	}

	basePrice, err := strconv.ParseFloat(r.FormValue("basePrice"), 64)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid basePrice: %w", err)
	}
	req.BasePrice = basePrice

	if raw := r.FormValue("seasonalPrice"); raw != "" {
		seasonalPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid seasonalPrice: %w", err)
		}
		req.SeasonalPrice = &seasonalPrice
	}

	if raw := r.FormValue("amenities"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Amenities); err != nil {
			return nil, nil, fmt.Errorf("invalid amenities: %w", err)
		}
	}

	if raw := r.FormValue("roomNumbers"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.RoomNumbers); err != nil {
			return nil, nil, fmt.Errorf("invalid roomNumbers: %w", err)
		}
	}

	var openFiles []multipart.File
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["photos"] {
			file, err := header.Open()
			if err != nil {
				closeAll(openFiles)
				return nil, nil, fmt.Errorf("failed to open photo %q: %w", header.Filename, err)
			}
			openFiles = append(openFiles, file)
			req.Photos = append(req.Photos, models.Photo{
				Filename: header.Filename,
				Reader:   file,
			})
		}
	}

	return req, openFiles, nil
}

func closeAll(files []multipart.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
