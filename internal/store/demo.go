package store

import "github.com/abelbrown/bookfinder/internal/book"

// DemoBooks is a small catalog for running the development backend without
// a dataset. Moods are left empty; the backend classifies descriptions.
func DemoBooks() []book.Book {
	return []book.Book{
		demo("9780345339683", "The Hobbit", "J.R.R. Tolkien", "Fiction", 1937, 4.27,
			"Bilbo Baggins is swept into a quest with a band of dwarves and a wizard, a journey to reclaim a hidden treasure guarded by the dragon Smaug."),
		demo("9780345335432", "Dragonflight", "Anne McCaffrey", "Fiction", 1968, 4.07,
			"On the world of Pern, dragons and their riders fight the deadly Thread falling from the sky. Lessa must find the courage to lead the weyr."),
		demo("9780439023528", "The Hunger Games", "Suzanne Collins", "Young Adult Fiction", 2008, 4.32,
			"In a dark future, Katniss volunteers for a televised fight to the death. Tension, danger and survival in a brutal arena."),
		demo("9780141439518", "Pride and Prejudice", "Jane Austen", "Fiction", 1813, 4.28,
			"Elizabeth Bennet and Mr. Darcy spar with wit and pride before love wins out, a romance of marriage, manners and the heart."),
		demo("9780307474278", "The Da Vinci Code", "Dan Brown", "Fiction", 2003, 3.86,
			"A murder in the Louvre leads a symbologist on a chase through Paris to solve a mystery and uncover a secret guarded for centuries."),
		demo("9780062316097", "Sapiens", "Yuval Noah Harari", "History", 2011, 4.39,
			"An introduction to the history of humankind, from the cognitive revolution to science and empire. Learn how our species came to rule."),
		demo("9780262033848", "Introduction to Algorithms", "Thomas H. Cormen; Charles E. Leiserson", "Computers", 2009, 4.35,
			"The standard textbook guide to algorithm design and data structures, with rigorous theory for computer science and software engineering."),
		demo("9780143105428", "The Road", "Cormac McCarthy", "Fiction", 2006, 3.97,
			"A father and son journey through a grim, burned world. A story of loss, grief and the small light of hope carried between them."),
		demo("9780345391803", "The Hitchhiker's Guide to the Galaxy", "Douglas Adams", "Fiction", 1979, 4.22,
			"A hilarious comedy of cosmic proportions: Arthur Dent's journey across the galaxy with a towel, sarcasm and a guide that says don't panic."),
		demo("9780061122415", "The Alchemist", "Paulo Coelho", "Fiction", 1988, 3.91,
			"A shepherd follows his dream across the desert. An inspiring fable about faith, courage and listening to the soul."),
		demo("9780307277671", "The Girl with the Dragon Tattoo", "Stieg Larsson", "Fiction", 2005, 4.16,
			"A journalist and a hacker hunt a killer. A psychological crime thriller steeped in violence and dark family secrets."),
		demo("9780553418026", "The Martian", "Andy Weir", "Fiction", 2011, 4.41,
			"Stranded on Mars, an astronaut uses science, engineering and humor to survive. Funny, tense and full of discovery."),
		demo("9780060850524", "Brave New World", "Aldous Huxley", "Fiction", 1932, 3.99,
			"A world of engineered happiness hides a darker truth. A classic dystopia about freedom and control."),
		demo("9780316769488", "The Catcher in the Rye", "J.D. Salinger", "Fiction", 1951, 3.80,
			"Holden Caulfield wanders New York after leaving school, lonely and broken, searching for something that will not break his heart."),
		demo("9781593279288", "Python Crash Course", "Eric Matthes", "Computers", 2019, 4.33,
			"A hands-on guide to programming in Python: learn to write code, work with data and build small systems."),
		demo("9780385737951", "The Maze Runner", "James Dashner", "Young Adult Fiction", 2009, 4.03,
			"Thomas wakes in a maze with no memory. A race to solve the maze and escape the danger hidden within its walls."),
	}
}

func demo(isbn, title, authors, categories string, year, rating float64, desc string) book.Book {
	return book.Book{
		ISBN13:        isbn,
		Title:         title,
		Authors:       authors,
		Description:   desc,
		Categories:    categories,
		PublishedYear: book.Float(year),
		AverageRating: book.Float(rating),
	}
}
