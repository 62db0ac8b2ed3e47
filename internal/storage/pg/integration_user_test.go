package pg

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusboard/campusboard/internal/domain"
	internal_errors "github.com/campusboard/campusboard/internal/errors"
	"github.com/campusboard/campusboard/internal/utils"
)

func requireStatusCode(t *testing.T, err error, statusCode int) {
	t.Helper()
	require.Error(t, err)
	e, ok := err.(*internal_errors.ErrorWithStatusCode)
	require.True(t, ok, "expected ErrorWithStatusCode, got %T: %v", err, err)
	assert.Equal(t, statusCode, e.StatusCode)
}

func TestSaveUser(t *testing.T) {
	user := mustSaveUser(t, "saveuser")

	got, err := storage.UserByStudentId(user.StudentId)
	require.NoError(t, err)
	assert.Equal(t, user.Id, got.Id)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.Nickname, got.Nickname)
	assert.Equal(t, domain.Skills{"go"}, got.Skills)
}

func TestSaveUser_DuplicateStudentId(t *testing.T) {
	user := mustSaveUser(t, "dup-sid")

	clone := user
	clone.Id = utils.NewUserId()
	clone.Email = "other-dup-sid@campus.edu"
	requireStatusCode(t, storage.SaveUser(clone), http.StatusConflict)

	// The conflict must not leave a second row behind.
	got, err := storage.UserByStudentId(user.StudentId)
	require.NoError(t, err)
	assert.Equal(t, user.Id, got.Id)
}

func TestSaveUser_DuplicateEmail(t *testing.T) {
	user := mustSaveUser(t, "dup-email")

	clone := user
	clone.Id = utils.NewUserId()
	clone.StudentId = "dup-email-other-sid"
	requireStatusCode(t, storage.SaveUser(clone), http.StatusConflict)
}

func TestUserByStudentId_NotFound(t *testing.T) {
	_, err := storage.UserByStudentId("no-such-student")
	requireStatusCode(t, err, http.StatusNotFound)
}

func TestRedeemVerificationToken(t *testing.T) {
	user := domain.User{
		Id:                utils.NewUserId(),
		StudentId:         "redeem-sid",
		Email:             "redeem@campus.edu",
		PassHash:          "hash",
		VerificationToken: utils.NewVerificationToken(),
		Nickname:          "redeem",
	}
	require.NoError(t, storage.SaveUser(user))

	require.NoError(t, storage.RedeemVerificationToken(user.VerificationToken))

	got, err := storage.UserByStudentId(user.StudentId)
	require.NoError(t, err)
	assert.True(t, got.Verified)
	assert.Empty(t, got.VerificationToken)

	// Tokens are single-use: a second redeem must fail.
	requireStatusCode(t, storage.RedeemVerificationToken(user.VerificationToken), http.StatusBadRequest)
}

func TestRedeemVerificationToken_Unknown(t *testing.T) {
	requireStatusCode(t, storage.RedeemVerificationToken("bogus-token"), http.StatusBadRequest)
}

func TestProfileView(t *testing.T) {
	user := mustSaveUser(t, "profileview")

	view, err := storage.ProfileView(user.Id)
	require.NoError(t, err)
	assert.Equal(t, user.Id, view.UserId)
	assert.Equal(t, user.StudentId, view.StudentId)
	assert.Equal(t, user.Email, view.Email)
	assert.Equal(t, user.Nickname, view.Nickname)
	assert.Equal(t, user.Department, view.Department)
	assert.Equal(t, user.AccountType, view.AccountType)

	_, err = storage.ProfileView(utils.NewUserId())
	requireStatusCode(t, err, http.StatusNotFound)
}

func TestUpdateProfile(t *testing.T) {
	user := mustSaveUser(t, "updateprofile")

	view, err := storage.UpdateProfile(user.Id, domain.Profile{
		Nickname:   "new-nick",
		Skills:     domain.Skills{"go", "sql"},
		Department: "EE",
		Year:       "2027",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-nick", view.Nickname)
	assert.Equal(t, domain.Skills{"go", "sql"}, view.Skills)
	assert.Equal(t, "EE", view.Department)
	assert.Equal(t, "2027", view.Year)

	// Overwrite semantics: omitted fields are blanked, not preserved.
	view, err = storage.UpdateProfile(user.Id, domain.Profile{Nickname: "only-nick"})
	require.NoError(t, err)
	assert.Equal(t, "only-nick", view.Nickname)
	assert.Empty(t, view.Skills)
	assert.Empty(t, view.Department)
	assert.Empty(t, view.Year)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	_, err := storage.UpdateProfile(utils.NewUserId(), domain.Profile{Nickname: "n"})
	requireStatusCode(t, err, http.StatusNotFound)
}
