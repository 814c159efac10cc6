package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/Bgmi10/booking-engine-sub003/config"
	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/pricing"
	"github.com/Bgmi10/booking-engine-sub003/utils"
	"github.com/gin-gonic/gin"
)

// CalendarCell is one resolved (room, date) price in the calendar response
type CalendarCell struct {
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Source string  `json:"source"`
}

// RoomCalendar groups a room's resolved prices for the requested range
type RoomCalendar struct {
	RoomID     uint           `json:"room_id"`
	RoomName   string         `json:"room_name"`
	RoomNumber string         `json:"room_number"`
	Cells      []CalendarCell `json:"cells"`
}

// GetPricingCalendar resolves the effective nightly price for every
// (room, date) cell in the requested range under one rate policy.
func GetPricingCalendar(c *gin.Context) {
	utils.LogInfo("GetPricingCalendar called")

	policyID, err := strconv.ParseUint(c.Query("rate_policy_id"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "rate_policy_id is required", nil)
		return
	}
	start, err := utils.ParseDate(c.Query("start"))
	if err != nil {
		utils.BadRequest(c, "Invalid start date", err.Error())
		return
	}
	end, err := utils.ParseDate(c.Query("end"))
	if err != nil {
		utils.BadRequest(c, "Invalid end date", err.Error())
		return
	}
	if start.After(end) {
		utils.BadRequest(c, "End date must be after start date", nil)
		return
	}

	var policy models.RatePolicy
	if err := config.DB.First(&policy, policyID).Error; err != nil {
		utils.LogError("Rate policy not found: %v", err)
		utils.NotFound(c, "Rate policy not found")
		return
	}

	rooms, err := roomsForQuery(c.Query("room_ids"))
	if err != nil {
		utils.BadRequest(c, "Invalid room_ids", err.Error())
		return
	}
	if len(rooms) == 0 {
		utils.Success(c, "Pricing calendar retrieved successfully", gin.H{"calendar": []RoomCalendar{}})
		return
	}

	roomIDs := make([]uint, len(rooms))
	for i, room := range rooms {
		roomIDs[i] = room.ID
	}

	percentages, err := roomRateLookup(config.DB, uint(policyID), roomIDs)
	if err != nil {
		utils.LogError("Failed to fetch room rates: %v", err)
		utils.InternalServerError(c, "Failed to fetch room rates", err.Error())
		return
	}

	overrideRows, err := utils.ActiveRateDatePrices(config.DB, uint(policyID), roomIDs, start, end)
	if err != nil {
		utils.LogError("Failed to fetch date prices: %v", err)
		utils.InternalServerError(c, "Failed to fetch date prices", err.Error())
		return
	}
	overrides := utils.ToOverrides(overrideRows)

	allDays := pricing.ExpandDates(start, end, pricing.WeekdaySet([]int{0, 1, 2, 3, 4, 5, 6}), pricing.ExpandOptions{})

	calendar := make([]RoomCalendar, 0, len(rooms))
	for _, room := range rooms {
		calculated := pricing.AdjustedPrice(effectiveBasePrice(policy, room), percentages[room.ID])
		cells := make([]CalendarCell, 0, len(allDays))
		for _, day := range allDays {
			resolved := pricing.ResolveEffectivePrice(room.ID, day, overrides, calculated)
			cells = append(cells, CalendarCell{
				Date:   day.Format(utils.DateFormat),
				Price:  resolved.Price,
				Source: resolved.Source,
			})
		}
		calendar = append(calendar, RoomCalendar{
			RoomID:     room.ID,
			RoomName:   room.Name,
			RoomNumber: room.RoomNumber,
			Cells:      cells,
		})
	}

	utils.Success(c, "Pricing calendar retrieved successfully", gin.H{
		"rate_policy": gin.H{"id": policy.ID, "name": policy.Name, "base_price": policy.BasePrice},
		"start":       start.Format(utils.DateFormat),
		"end":         end.Format(utils.DateFormat),
		"calendar":    calendar,
	})
}

// roomsForQuery loads the active rooms named by a comma-separated ID list,
// or every active room when the list is empty.
func roomsForQuery(rawIDs string) ([]models.Room, error) {
	query := config.DB.Where("is_active = ?", true).Order("room_number asc")
	if strings.TrimSpace(rawIDs) != "" {
		ids, err := parseIDList(rawIDs)
		if err != nil {
			return nil, err
		}
		query = query.Where("id IN ?", ids)
	}
	var rooms []models.Room
	if err := query.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func parseIDList(raw string) ([]uint, error) {
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

// priorPriceLookup builds the classifier's prior-price function from the
// current override set and per-room calculated prices.
func priorPriceLookup(overrides []pricing.Override, calculated map[uint]float64) pricing.PriorPriceFunc {
	return func(roomID uint, date time.Time) (float64, bool) {
		base, ok := calculated[roomID]
		if !ok {
			return 0, false
		}
		resolved := pricing.ResolveEffectivePrice(roomID, date, overrides, base)
		return resolved.Price, true
	}
}
