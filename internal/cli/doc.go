// Package cli provides the interactive gophnet menu.
//
// App loads the network from its storage.Repository, runs the numbered
// menu until the user picks 6 (or stdin ends), then saves the network back:
//
//	1. Create Profile
//	2. Add Friend
//	3. Post Message
//	4. View User Profile
//	5. Display All Users
//	6. Exit
//
// Store failures are printed and the menu continues. Only load and save
// failures are returned from Run.
package cli
