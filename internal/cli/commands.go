package cli

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/gophnet/internal/common"
)

// CreateProfile asks for a username and password and creates the profile.
func (a *App) CreateProfile(ctx context.Context) error {
	username, err := a.askToken("Enter Username: ")
	if err != nil {
		return err
	}
	password, err := a.askPassword("Enter Password: ")
	if err != nil {
		return err
	}

	if err := a.store.CreateUser(username, password); err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			a.println("Username already exists. Try a different one.")
		} else {
			a.println("Error:", err)
		}
		return err
	}

	a.log.Debug(ctx, "profile created", "user", username)
	a.println("User", username, "created successfully.")
	return nil
}

// AddFriend links the acting user with another one.
func (a *App) AddFriend(ctx context.Context) error {
	username, err := a.askToken("Enter Your Username: ")
	if err != nil {
		return err
	}
	if err := a.authorize(ctx, username); err != nil {
		return err
	}
	friend, err := a.askToken("Enter Friend's Username: ")
	if err != nil {
		return err
	}

	if err := a.store.LinkFriends(username, friend); err != nil {
		switch {
		case errors.Is(err, common.ErrUnknownUser):
			a.println("One or both usernames do not exist.")
		case errors.Is(err, common.ErrSelfLink):
			a.println("You cannot add yourself as a friend.")
		case errors.Is(err, common.ErrAlreadyFriends):
			a.println(friend, "is already a friend of", username+".")
		default:
			a.println("Error:", err)
		}
		return err
	}

	a.log.Debug(ctx, "friends linked", "user", username, "friend", friend)
	a.println(friend, "added as a friend to", username)
	return nil
}

// PostMessage appends a post to the acting user's feed. The content is
// the rest of the line, spaces included.
func (a *App) PostMessage(ctx context.Context) error {
	username, err := a.askToken("Enter Your Username: ")
	if err != nil {
		return err
	}
	if err := a.authorize(ctx, username); err != nil {
		return err
	}
	content, err := GetSimpleText(a.reader, "Enter Post Content: ", a.out)
	if err != nil {
		return err
	}

	if err := a.store.AddPost(username, content); err != nil {
		if errors.Is(err, common.ErrUnknownUser) {
			a.println("Username does not exist.")
		} else {
			a.println("Error:", err)
		}
		return err
	}

	a.log.Debug(ctx, "post added", "user", username)
	a.println("Post added successfully.")
	return nil
}

// ViewProfile prints a user's friends and posts.
func (a *App) ViewProfile(ctx context.Context) error {
	username, err := a.askToken("Enter Username to View Profile: ")
	if err != nil {
		return err
	}

	p, ok := a.store.Profile(username)
	if !ok {
		a.println("Username does not exist.")
		return common.ErrUnknownUser
	}

	a.println("Friends of " + p.Username + ":")
	for _, f := range p.Friends {
		a.println("- " + f)
	}
	a.println("Posts by " + p.Username + ":")
	for _, post := range p.Posts {
		a.println("Post: " + post.Content)
	}
	return nil
}

// ListUsers prints every username in canonical order.
func (a *App) ListUsers(ctx context.Context) error {
	for _, name := range a.store.Usernames() {
		a.println("User: " + name)
	}
	return nil
}

// authorize checks the acting user's password when the config asks for it.
func (a *App) authorize(ctx context.Context, username string) error {
	if !a.config.RequireAuth {
		return nil
	}
	password, err := a.askPassword("Enter Your Password: ")
	if err != nil {
		return err
	}
	if err := a.store.Login(username, password); err != nil {
		a.log.Warn(ctx, "authentication failed", "user", username)
		a.println("Invalid username or password.")
		return err
	}
	return nil
}

func (a *App) askToken(prompt string) (string, error) {
	s, err := GetToken(a.reader, prompt, a.out)
	if err != nil {
		a.reportInput(err)
	}
	return s, err
}

func (a *App) askPassword(prompt string) (string, error) {
	s, err := GetPassword(a.reader, prompt, a.out)
	if err != nil {
		a.reportInput(err)
	}
	return s, err
}

func (a *App) reportInput(err error) {
	switch {
	case errors.Is(err, io.EOF):
		a.println()
	case errors.Is(err, errEmptyInput):
		a.println("Input cannot be empty.")
	default:
		a.println("Invalid input:", err)
	}
}
