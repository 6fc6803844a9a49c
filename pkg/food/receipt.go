package food

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"fridgemate/domain"
	"fridgemate/entities"
	"fridgemate/internal/utils"
	"fridgemate/internal/utils/storage"

	"github.com/google/uuid"
)

const (
	scanStatusPending   = "Pending"
	scanStatusProcessed = "Processed"
	scanStatusFailed    = "Failed"
	scanStatusCompleted = "Completed"
)

// receiptLinePattern extracts a trailing quantity from a recognized
// receipt line, e.g. "Milk 2" -> ("Milk", 2). Lines without a trailing
// number are skipped.
var receiptLinePattern = regexp.MustCompile(`^(.+)\s(\d+)$`)

func parseReceiptLines(lines []string) []domain.ScannedItemInfo {
	var items []domain.ScannedItemInfo
	for _, line := range lines {
		match := receiptLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		quantity, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		items = append(items, domain.ScannedItemInfo{
			Name:     match[1],
			Quantity: quantity,
		})
	}
	return items
}

func (s *foodService) UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest) (domain.UploadReceiptResponse, error) {
	scanID := uuid.New()
	fileName := fmt.Sprintf("receipt-%s", scanID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.ReceiptImage, "receipts", storage.AllowImage...)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)

	scan := entities.ReceiptScan{
		ID:       scanID,
		ImageURL: imageURL,
		Status:   scanStatusPending,
	}

	s.mu.Lock()
	s.scans = append(s.scans, scan)
	s.persistScansLocked()
	s.mu.Unlock()

	go s.processReceipt(scanID, req.ReceiptImage)

	return domain.UploadReceiptResponse{
		ScanID:   scanID.String(),
		ImageURL: imageURL,
		Status:   scanStatusPending,
	}, nil
}

// processReceipt posts the receipt image to the external OCR model and
// stores the recognized (name, quantity) candidates on the scan.
func (s *foodService) processReceipt(scanID uuid.UUID, image *multipart.FileHeader) {
	ocrURL := utils.GetConfig("OCR_MODEL_URL")
	if ocrURL == "" {
		s.finishScan(scanID, scanStatusFailed, "Error: OCR model URL not configured")
		return
	}

	file, err := image.Open()
	if err != nil {
		s.finishScan(scanID, scanStatusFailed, fmt.Sprintf("Error opening file: %s", err.Error()))
		return
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", image.Filename)
	if err != nil {
		s.finishScan(scanID, scanStatusFailed, fmt.Sprintf("Error creating form file: %s", err.Error()))
		return
	}
	if _, err = io.Copy(part, file); err != nil {
		s.finishScan(scanID, scanStatusFailed, fmt.Sprintf("Error writing form file: %s", err.Error()))
		return
	}
	if err = writer.Close(); err != nil {
		s.finishScan(scanID, scanStatusFailed, fmt.Sprintf("Error closing writer: %s", err.Error()))
		return
	}

	httpReq, err := http.NewRequest("POST", ocrURL, body)
	if err != nil {
		s.finishScan(scanID, scanStatusFailed, fmt.Sprintf("Error creating request: %s", err.Error()))
		return
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		s.finishScan(scanID, scanStatusFailed, fmt.Sprintf("Error sending request to OCR model: %s", err.Error()))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		s.finishScan(scanID, scanStatusFailed, fmt.Sprintf("OCR model error: %s - %s", resp.Status, string(bodyBytes)))
		return
	}

	var ocrResponse struct {
		Success bool     `json:"success"`
		Lines   []string `json:"lines"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ocrResponse); err != nil {
		s.finishScan(scanID, scanStatusFailed, fmt.Sprintf("Error parsing OCR response: %s", err.Error()))
		return
	}

	items := parseReceiptLines(ocrResponse.Lines)
	if !ocrResponse.Success || len(items) == 0 {
		s.finishScan(scanID, scanStatusFailed, "OCR model couldn't extract any items from receipt")
		return
	}

	resultsJSON, _ := json.Marshal(items)
	s.finishScan(scanID, scanStatusProcessed, string(resultsJSON))
}

func (s *foodService) finishScan(scanID uuid.UUID, status, results string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.scans {
		if s.scans[i].ID == scanID {
			s.scans[i].Status = status
			s.scans[i].OcrResults = results
			s.persistScansLocked()
			return
		}
	}
}

func (s *foodService) GetReceiptScan(ctx context.Context, id string) (domain.ReceiptScanResponse, error) {
	scanID, err := uuid.Parse(id)
	if err != nil {
		return domain.ReceiptScanResponse{}, domain.ErrParseUUID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, scan := range s.scans {
		if scan.ID != scanID {
			continue
		}

		response := domain.ReceiptScanResponse{
			ScanID:   scan.ID.String(),
			ImageURL: scan.ImageURL,
			Status:   scan.Status,
		}
		if scan.Status == scanStatusProcessed {
			_ = json.Unmarshal([]byte(scan.OcrResults), &response.Items)
		}
		return response, nil
	}
	return domain.ReceiptScanResponse{}, domain.ErrReceiptScanNotFound
}

func (s *foodService) SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest) error {
	scanID, err := uuid.Parse(req.ScanID)
	if err != nil {
		return domain.ErrParseUUID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	scanIndex := -1
	for i := range s.scans {
		if s.scans[i].ID == scanID {
			scanIndex = i
			break
		}
	}
	if scanIndex < 0 {
		return domain.ErrReceiptScanNotFound
	}

	// the batch is prepared in full before anything is appended; one
	// bad date rejects the whole request instead of half of it
	prepared := make([]entities.FoodItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		var expirationDate time.Time
		if itemReq.ExpirationDate != "" {
			expirationDate, err = time.Parse("2006-01-02", itemReq.ExpirationDate)
			if err != nil {
				return domain.ErrInvalidExpiration
			}
		} else {
			expirationDate = s.now().AddDate(0, 0, 7)
		}

		item := entities.FoodItem{
			ID:             uuid.New(),
			Name:           itemReq.Name,
			Quantity:       itemReq.Quantity,
			ExpirationDate: expirationDate,
			StorageType:    entities.StorageType(itemReq.StorageType),
			Category:       entities.FoodCategory(itemReq.Category),
		}
		item.Normalize()
		prepared = append(prepared, item)
	}

	s.items = append(s.items, prepared...)
	s.persistItemsLocked()

	s.scans[scanIndex].Status = scanStatusCompleted
	s.persistScansLocked()
	return nil
}
