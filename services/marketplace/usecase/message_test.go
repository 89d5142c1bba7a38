package usecase_test

import (
	"context"
	"testing"

	"yumi/domain"
	"yumi/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	parent := testutil.CreateUser(t, f.db, domain.RoleParent)
	expert := testutil.CreateUser(t, f.db, domain.RoleExpert)

	msg, err := f.messages.Send(ctx, &domain.MessageRequest{SenderID: parent.ID, ReceiverID: expert.ID, Content: "  Hello doctor "})
	require.NoError(t, err)
	assert.Equal(t, "Hello doctor", msg.Content)
	assert.False(t, msg.IsRead)
	assert.False(t, msg.SentAt.IsZero())

	_, err = f.messages.Send(ctx, &domain.MessageRequest{SenderID: parent.ID, ReceiverID: parent.ID, Content: "me"})
	assert.ErrorIs(t, err, domain.ErrSelfMessage)

	_, err = f.messages.Send(ctx, &domain.MessageRequest{SenderID: parent.ID, ReceiverID: 999, Content: "hi"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.messages.Send(ctx, &domain.MessageRequest{SenderID: parent.ID, ReceiverID: expert.ID, Content: "   "})
	assert.True(t, domain.IsValidation(err))

	conv, err := f.messages.Conversation(ctx, expert.ID, parent.ID)
	require.NoError(t, err)
	require.Len(t, conv, 1)

	require.NoError(t, f.messages.MarkRead(ctx, msg.ID))
	inbox, err := f.messages.Inbox(ctx, expert.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.True(t, inbox[0].IsRead)
}
