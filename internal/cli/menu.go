package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const menuText = `Simple Social Network
1. Create Profile
2. Add Friend
3. Post Message
4. View User Profile
5. Display All Users
6. Exit
Enter your choice: `

// execIface is the command surface the menu dispatches to. App satisfies
// it; tests use a recording stub.
type execIface interface {
	CreateProfile(ctx context.Context) error
	AddFriend(ctx context.Context) error
	PostMessage(ctx context.Context) error
	ViewProfile(ctx context.Context) error
	ListUsers(ctx context.Context) error
}

// runMenu prints the menu and dispatches choices until 6 is picked or the
// input ends. Command errors are already reported to the user by the
// handlers; an input error other than EOF ends the loop like EOF does.
func runMenu(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for {
		choice, err := GetSimpleText(reader, menuText, w)
		if err != nil {
			fmt.Fprintln(w)
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(w, "Input error:", err)
			}
			fmt.Fprintln(w, "Exiting...")
			return
		}

		n, err := strconv.Atoi(choice)
		if err != nil {
			n = 0
		}

		switch n {
		case 1:
			_ = a.CreateProfile(ctx)
		case 2:
			_ = a.AddFriend(ctx)
		case 3:
			_ = a.PostMessage(ctx)
		case 4:
			_ = a.ViewProfile(ctx)
		case 5:
			_ = a.ListUsers(ctx)
		case 6:
			fmt.Fprintln(w, "Exiting...")
			return
		default:
			fmt.Fprintln(w, "Invalid choice, please try again.")
		}
	}
}
