package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/messages"
	"github.com/MriyaDevelopment/pumba-server/middlewares"
	"github.com/MriyaDevelopment/pumba-server/models"
	"github.com/MriyaDevelopment/pumba-server/validation"
)

type GameHandler struct{}

func NewGameHandler() *GameHandler { return &GameHandler{} }

// matchesPreferences reports whether every game tag contains the corresponding
// user preference. Containment, not equality: ages "0-1,2-4" matches a user
// with ages "2-4". An empty preference matches everything.
func matchesPreferences(game models.Game, user *models.User) bool {
	return strings.Contains(game.Ages, user.Ages) &&
		strings.Contains(game.Time, user.Time) &&
		strings.Contains(game.DoorType, user.DoorType) &&
		strings.Contains(game.EnergyLevel, user.EnergyLevel) &&
		strings.Contains(game.Stuff, user.Stuff)
}

// decorate attaches the per-request inventory and saved flag.
func (h *GameHandler) decorate(game *models.Game, token string) error {
	var inventory []models.Inventory
	if err := database.DB.Where(`"gameId" = ?`, game.ID).Find(&inventory).Error; err != nil {
		return err
	}
	if inventory == nil {
		inventory = []models.Inventory{}
	}
	game.Inventory = inventory

	var count int64
	if err := database.DB.Model(&models.SaveGame{}).
		Where(`api_token = ? AND "gameId" = ?`, token, game.ID).
		Count(&count).Error; err != nil {
		return err
	}
	game.IsSaved = count > 0
	return nil
}

// POST /getGames
func (h *GameHandler) Get(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	var games []models.Game
	if err := database.DB.Find(&games).Error; err != nil {
		return sendFailure(c, "/getGames", err)
	}

	list := make([]echo.Map, 0, len(games))
	for i := range games {
		if !matchesPreferences(games[i], user) {
			continue
		}
		if err := h.decorate(&games[i], user.APIToken); err != nil {
			return sendFailure(c, "/getGames", err)
		}
		list = append(list, echo.Map{"game": games[i]})
	}

	return sendResponse(c, "games", list)
}

// POST /getGameById
func (h *GameHandler) GetByID(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	var req struct {
		ID string `json:"id"`
	}
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"id": "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	var game models.Game
	if err := database.DB.First(&game, "id = ?", atoiOr(req.ID, 0)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return sendError(c, http.StatusNotFound, messages.GameError)
		}
		return sendFailure(c, "/getGameById", err)
	}

	if err := h.decorate(&game, user.APIToken); err != nil {
		return sendFailure(c, "/getGameById", err)
	}

	return sendResponse(c, "game", game)
}

// POST /saveGame
// Toggle: delete the marker row if present, create it otherwise, and report
// the resulting state. One transaction plus the unique (owner, game) index
// keeps concurrent toggles from double-inserting.
func (h *GameHandler) Save(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	var req struct {
		GameID string `json:"gameId"`
	}
	raw, err := bindBody(c, &req)
	if err != nil {
		return sendError(c, http.StatusBadRequest, messages.AllFieldsError)
	}

	if errs := validation.Validate(raw, validation.Rules{
		"gameId": "required|string",
	}); errs != nil {
		return sendErrorData(c, http.StatusBadRequest, messages.AllFieldsError, errs)
	}

	isSaved := false
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var saved models.SaveGame
		err := tx.
			Where(`api_token = ? AND "gameId" = ?`, user.APIToken, req.GameID).
			First(&saved).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			isSaved = true
			return tx.Create(&models.SaveGame{
				APIToken: user.APIToken,
				GameID:   req.GameID,
			}).Error
		case err != nil:
			return err
		}
		return tx.Delete(&saved).Error
	})
	if err != nil {
		return sendFailure(c, "/saveGame", err)
	}

	return sendResponse(c, "saveInfo", echo.Map{
		"isSaved": isSaved,
		"gameId":  req.GameID,
	})
}

// POST /getSavedGames
func (h *GameHandler) GetSavedGames(c echo.Context) error {
	user := middlewares.CurrentUser(c)

	var saved []models.SaveGame
	if err := database.DB.Where("api_token = ?", user.APIToken).Find(&saved).Error; err != nil {
		return sendFailure(c, "/getSavedGames", err)
	}

	list := make([]echo.Map, 0, len(saved))
	for _, s := range saved {
		var game models.Game
		if err := database.DB.First(&game, "id = ?", atoiOr(s.GameID, 0)).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return sendFailure(c, "/getSavedGames", err)
		}
		if err := h.decorate(&game, user.APIToken); err != nil {
			return sendFailure(c, "/getSavedGames", err)
		}
		list = append(list, echo.Map{"game": game})
	}

	return sendResponse(c, "games", list)
}
