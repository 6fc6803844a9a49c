package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fridgemate/entities"
	"fridgemate/internal/utils"
	"fridgemate/internal/utils/mailing"
	"fridgemate/pkg/food"
)

type (
	// NotifyService mails a digest of inventory entries that are about
	// to expire.
	NotifyService interface {
		SendExpiryDigest(ctx context.Context, email string) error
	}

	notifyService struct {
		foodService food.FoodService
		sendMail    func(toEmail, subject, body string) error
		now         func() time.Time
	}
)

func NewNotifyService(foodService food.FoodService) NotifyService {
	return &notifyService{
		foodService: foodService,
		sendMail:    mailing.SendMail,
		now:         time.Now,
	}
}

func (s *notifyService) SendExpiryDigest(ctx context.Context, email string) error {
	expiring := s.foodService.ItemsExpiringSoon(ctx)
	body := buildDigestBody(expiring, s.now())
	return s.sendMail(email, "FridgeMate: items expiring soon", body)
}

func buildDigestBody(items []entities.FoodItem, now time.Time) string {
	if len(items) == 0 {
		return "<p>Nothing in your fridge or pantry expires in the next 3 days.</p>"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<p>%d item(s) expire within the next 3 days:</p>\n<ul>\n", len(items))
	for _, item := range items {
		fmt.Fprintf(&b, "<li>%s ×%d (%s) — %s</li>\n",
			item.Name,
			item.Quantity,
			item.StorageType,
			utils.ExpiryLabel(item.ExpirationDate, now),
		)
	}
	b.WriteString("</ul>\n")
	return b.String()
}
