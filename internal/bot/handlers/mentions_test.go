package handlers

import (
	"context"
	"errors"
	"testing"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type fakeMemberAPI struct {
	member *models.ChatMember
	err    error
}

func (f *fakeMemberAPI) GetChatMember(_ context.Context, _ *tgbot.GetChatMemberParams) (*models.ChatMember, error) {
	return f.member, f.err
}

func TestUserMention(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		api  *fakeMemberAPI
		want string
	}{
		{
			name: "username is escaped",
			api: &fakeMemberAPI{member: &models.ChatMember{
				Member: &models.ChatMemberMember{User: &models.User{ID: 5, Username: "cool_user"}},
			}},
			want: "@cool\\_user",
		},
		{
			name: "first name link when no username",
			api: &fakeMemberAPI{member: &models.ChatMember{
				Member: &models.ChatMemberMember{User: &models.User{ID: 5, FirstName: "Иван"}},
			}},
			want: "[Иван](tg://user?id=5)",
		},
		{
			name: "first name special characters escaped",
			api: &fakeMemberAPI{member: &models.ChatMember{
				Member: &models.ChatMemberMember{User: &models.User{ID: 5, FirstName: "Mr. Big!"}},
			}},
			want: "[Mr\\. Big\\!](tg://user?id=5)",
		},
		{
			name: "admin member shape",
			api: &fakeMemberAPI{member: &models.ChatMember{
				Administrator: &models.ChatMemberAdministrator{User: models.User{ID: 5, Username: "boss"}},
			}},
			want: "@boss",
		},
		{
			name: "transport error falls back to id link",
			api:  &fakeMemberAPI{err: errors.New("boom")},
			want: "[User 5](tg://user?id=5)",
		},
		{
			name: "empty union falls back to id link",
			api:  &fakeMemberAPI{member: &models.ChatMember{}},
			want: "[User 5](tg://user?id=5)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := userMention(context.Background(), tt.api, -100, 5)
			if got != tt.want {
				t.Errorf("userMention = %q, want %q", got, tt.want)
			}
		})
	}
}
