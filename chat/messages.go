package chat

// Fixed replies.
const (
	helpText = "Welcome to BookLog! Here are some commands you can use:\n" +
		"• add book [Title] by [Author], [Genre], [Rating]\n" +
		"• edit book [Old Title], [New Title], [New Author], [New Genre], [New Rating]\n" +
		"• delete book [Title]\n" +
		"• suggest book (or recommend book)\n" +
		"You can also ask questions like 'How do I search for books?' or 'What does the add book button do?'\n" +
		"If you run into issues, simply type 'I have an error' for troubleshooting tips."

	howToSearchText = "To search for a book, type keywords into the search bar; the list filters automatically by title or author."
	howToFilterText = "To filter your book list, select a genre from the dropdown menu. The list updates automatically."

	troubleshootText = "If you're experiencing issues, please check your internet connection, and try refreshing the page. If the problem persists, please contact support."

	explainAddBookText = "The 'Add Book' button submits a form when you input a new book's details (Title, Author, Genre, Rating) to add it to your log."
	explainEditText    = "The 'Edit' button opens a modal that lets you update the details of the selected book."
	explainDeleteText  = "The 'Delete' button opens a confirmation modal to remove the selected book from your log."
	explainGenericText = "I can explain any feature. For example, try asking 'What does the add book button do?'"

	notReadyText      = "Chatbot is not ready yet. Please wait a moment and try again."
	notUnderstoodText = "I'm sorry, I don't understand. Can you please rephrase? Or contact the developer for help."
	aiUnavailableText = "Sorry, something went wrong with the AI service."
)

// Usage hints for malformed commands.
const (
	addBookUsage           = "Please provide details as: add book Title by Author, Genre, Rating"
	addBookIncompleteUsage = "Please provide complete details: add book Title by Author, Genre, Rating"
	editBookUsage          = `Use: "edit book Old Title, New Title, New Author, New Genre, New Rating"`
	deleteBookUsage        = "Please specify a book to delete: delete book Title"
)

// Reply templates.
const (
	addedFormat        = `Added book "%s" by %s (Genre: %s, Rating: %s)`
	updatedFormat      = `Updated book "%s" to: Title: "%s", Author: "%s", Genre: "%s", Rating: "%s"`
	deletedFormat      = `Deleted book "%s"`
	notFoundFormat     = `Book "%s" not found.`
	addFailedFormat    = `Sorry, I couldn't add book "%s". Please try again later.`
	updateFailedFormat = `Sorry, I couldn't update book "%s". Please try again later.`
	deleteFailedFormat = `Sorry, I couldn't delete book "%s". Please try again later.`
)
