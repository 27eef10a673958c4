package http

import (
	"net/http"

	"github.com/DRSN-tech/store-backend/internal/usecase"
	"github.com/DRSN-tech/store-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userUsecase usecase.UserUC
	logger      logger.Logger
}

func NewUserHandler(userUsecase usecase.UserUC, logger logger.Logger) *UserHandler {
	return &UserHandler{userUsecase: userUsecase, logger: logger}
}

// listUsers
//
//	@Summary	Список пользователей
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		UserRes
//	@Failure	403	{object}	ErrorResponse
//	@Router		/user [get]
func (u *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := u.userUsecase.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, u.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrUserRes(users))
}

// getUser
//
//	@Summary	Пользователь по email
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		email	path		string	true	"Email"
//	@Success	200		{object}	UserRes
//	@Failure	404		{object}	ErrorResponse
//	@Router		/user/{email} [get]
func (u *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := u.userUsecase.GetUser(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeError(w, r, u.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserRes(user))
}

// upsertUser
//
//	@Summary		Вход или регистрация
//	@Description	Создаёт или обновляет пользователя и выдаёт новый токен доступа
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			email	path		string			true	"Email"
//	@Param			profile	body		UserProfileReq	true	"Профиль"
//	@Success		200		{object}	UpsertUserRes
//	@Router			/user/{email} [put]
func (u *UserHandler) upsertUser(w http.ResponseWriter, r *http.Request) {
	var req UserProfileReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, u.logger, err)
		return
	}

	res, err := u.userUsecase.UpsertUser(r.Context(), chi.URLParam(r, "email"), req.toDomain())
	if err != nil {
		writeError(w, r, u.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, UpsertUserRes{Result: toUpdateRes(res.Result), Token: res.Token})
}

// updateProfile
//
//	@Summary	Обновление профиля
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		email	path		string			true	"Email"
//	@Param		profile	body		UserProfileReq	true	"Профиль"
//	@Success	200		{object}	UpdateRes
//	@Router		/user/update/{email} [put]
func (u *UserHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req UserProfileReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, u.logger, err)
		return
	}

	res, err := u.userUsecase.UpdateProfile(r.Context(), chi.URLParam(r, "email"), req.toDomain())
	if err != nil {
		writeError(w, r, u.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUpdateRes(res))
}

// checkAdmin
//
//	@Summary	Проверка роли admin
//	@Tags		users
//	@Produce	json
//	@Param		email	path		string	true	"Email"
//	@Success	200		{object}	AdminRes
//	@Router		/admin/{email} [get]
func (u *UserHandler) checkAdmin(w http.ResponseWriter, r *http.Request) {
	isAdmin, err := u.userUsecase.IsAdmin(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeError(w, r, u.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, AdminRes{Admin: isAdmin})
}

// promoteToAdmin
//
//	@Summary	Назначение администратора
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Param		email	path		string	true	"Email"
//	@Success	200		{object}	UpdateRes
//	@Failure	404		{object}	ErrorResponse	"Пользователь не найден"
//	@Router		/user/admin/{email} [put]
func (u *UserHandler) promoteToAdmin(w http.ResponseWriter, r *http.Request) {
	res, err := u.userUsecase.PromoteToAdmin(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeError(w, r, u.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUpdateRes(res))
}
