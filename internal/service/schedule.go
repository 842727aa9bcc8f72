package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/models"
	"github.com/abdul8704/Cookify-server/internal/nutrition"
	"github.com/abdul8704/Cookify-server/internal/types"
)

// ScheduleService manages per-day meal plans. Completing a planned meal logs
// one serving into the intake record for that day; un-completing removes it
// again.
type ScheduleService struct {
	db     *gorm.DB
	intake *IntakeService
}

func NewScheduleService(db *gorm.DB, intake *IntakeService) *ScheduleService {
	return &ScheduleService{db: db, intake: intake}
}

// GetDay returns the plan for a date, meals sorted into slot order. Days
// without a plan come back as an empty schedule.
func (s *ScheduleService) GetDay(userID uuid.UUID, date string) (*models.MealSchedule, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	var schedule models.MealSchedule
	err = s.db.Preload("Meals.Recipe").
		Where("user_id = ? AND date = ?", userID, date).
		First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.MealSchedule{UserID: userID, Date: date, Meals: []models.ScheduledMeal{}}, nil
	}
	if err != nil {
		return nil, err
	}

	sortMealsBySlot(schedule.Meals)
	return &schedule, nil
}

// GetRange returns every plan between from and to inclusive, ordered by date.
func (s *ScheduleService) GetRange(userID uuid.UUID, from, to string) ([]models.MealSchedule, error) {
	from, err := normalizeDate(from)
	if err != nil {
		return nil, err
	}
	to, err = normalizeDate(to)
	if err != nil {
		return nil, err
	}
	if from > to {
		return nil, fmt.Errorf("%w: from date is after to date", ErrInvalidInput)
	}

	var schedules []models.MealSchedule
	err = s.db.Preload("Meals.Recipe").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	for i := range schedules {
		sortMealsBySlot(schedules[i].Meals)
	}
	return schedules, nil
}

// AddMeal plans a recipe into a slot on a date, creating the day's schedule
// on first use.
func (s *ScheduleService) AddMeal(userID uuid.UUID, req types.ScheduleMealRequest) (*models.MealSchedule, error) {
	date, err := normalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	slot := strings.ToLower(strings.TrimSpace(req.MealSlot))
	if !nutrition.ValidMealType(slot) {
		return nil, fmt.Errorf("%w: unknown meal slot %q", ErrInvalidInput, req.MealSlot)
	}
	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid recipe id", ErrInvalidInput)
	}
	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", recipeID).Error; err != nil {
		return nil, ErrNotFound
	}

	schedule, err := s.ensureDay(userID, date)
	if err != nil {
		return nil, err
	}

	meal := models.ScheduledMeal{
		MealScheduleID: schedule.ID,
		RecipeID:       recipeID,
		MealSlot:       slot,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return s.GetDay(userID, date)
}

// RemoveMeal unplans a scheduled meal. Completed meals stay in the intake
// log; removing the plan does not undo the eating.
func (s *ScheduleService) RemoveMeal(userID uuid.UUID, req types.ScheduleEntryRequest) (*models.MealSchedule, error) {
	meal, schedule, err := s.findOwnedMeal(userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(meal).Error; err != nil {
		return nil, err
	}
	return s.GetDay(userID, schedule.Date)
}

// Complete marks a planned meal eaten and logs one serving of its recipe
// into that day's intake.
func (s *ScheduleService) Complete(userID uuid.UUID, req types.ScheduleEntryRequest) (*models.MealSchedule, error) {
	meal, schedule, err := s.findOwnedMeal(userID, req)
	if err != nil {
		return nil, err
	}
	if meal.Completed {
		return s.GetDay(userID, schedule.Date)
	}

	if err := s.intake.LogRecipe(userID, schedule.Date, meal.MealSlot, meal.RecipeID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	meal.Completed = true
	meal.CompletedAt = &now
	if err := s.db.Save(meal).Error; err != nil {
		return nil, err
	}
	return s.GetDay(userID, schedule.Date)
}

// Uncomplete reverses Complete: the most recent matching intake entry is
// removed and the meal returns to pending.
func (s *ScheduleService) Uncomplete(userID uuid.UUID, req types.ScheduleEntryRequest) (*models.MealSchedule, error) {
	meal, schedule, err := s.findOwnedMeal(userID, req)
	if err != nil {
		return nil, err
	}
	if !meal.Completed {
		return s.GetDay(userID, schedule.Date)
	}

	if err := s.intake.RemoveLastForRecipe(userID, schedule.Date, meal.MealSlot, meal.RecipeID); err != nil {
		return nil, err
	}

	meal.Completed = false
	meal.CompletedAt = nil
	if err := s.db.Save(meal).Error; err != nil {
		return nil, err
	}
	return s.GetDay(userID, schedule.Date)
}

// TodayPending returns today's plan with incomplete meals first, each group
// in slot order.
func (s *ScheduleService) TodayPending(userID uuid.UUID) ([]models.ScheduledMeal, error) {
	schedule, err := s.GetDay(userID, time.Now().UTC().Format(dateLayout))
	if err != nil {
		return nil, err
	}

	meals := make([]models.ScheduledMeal, 0, len(schedule.Meals))
	for _, m := range schedule.Meals {
		if !m.Completed {
			meals = append(meals, m)
		}
	}
	for _, m := range schedule.Meals {
		if m.Completed {
			meals = append(meals, m)
		}
	}
	return meals, nil
}

func (s *ScheduleService) ensureDay(userID uuid.UUID, date string) (*models.MealSchedule, error) {
	var schedule models.MealSchedule
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&schedule).Error
	if err == nil {
		return &schedule, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	schedule = models.MealSchedule{UserID: userID, Date: date}
	if err := s.db.Create(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *ScheduleService) findOwnedMeal(userID uuid.UUID, req types.ScheduleEntryRequest) (*models.ScheduledMeal, *models.MealSchedule, error) {
	mealID, err := uuid.Parse(req.MealID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid meal id", ErrInvalidInput)
	}

	var meal models.ScheduledMeal
	if err := s.db.First(&meal, "id = ?", mealID).Error; err != nil {
		return nil, nil, ErrNotFound
	}

	var schedule models.MealSchedule
	if err := s.db.First(&schedule, "id = ?", meal.MealScheduleID).Error; err != nil {
		return nil, nil, ErrNotFound
	}
	if schedule.UserID != userID {
		return nil, nil, ErrForbidden
	}
	return &meal, &schedule, nil
}

// sortMealsBySlot orders meals by the day's eating sequence, which differs
// from the grouping order used for intake reporting.
func sortMealsBySlot(meals []models.ScheduledMeal) {
	rank := make(map[string]int, len(nutrition.SlotOrder))
	for i, slot := range nutrition.SlotOrder {
		rank[slot] = i
	}
	sort.SliceStable(meals, func(i, j int) bool {
		return rank[meals[i].MealSlot] < rank[meals[j].MealSlot]
	})
}
