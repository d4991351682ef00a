package chatbot

// Тексты сообщений диалога. Тексты с подсказкой при ошибке валидации
// всегда содержат исходный вопрос, чтобы состояние можно было повторить.
const (
	msgGreeting = "Hi! I'm here to help with your application. **What's your full name?**"

	msgEmptyInput = "I didn't receive any input. Could you please try again?"

	msgNameRetry = "Please provide a valid full name (2-50 characters, letters and spaces only). " +
		"**What's your full name?**"

	msgEmailRetry = "Please provide a valid email address (e.g., john.doe@example.com). " +
		"**What's your email address?**"

	msgPhoneRetry = "Please provide a valid phone number (8-15 digits, may include +, spaces, dashes, or parentheses). " +
		"**What's your phone number?**"

	msgExperienceRetry = "Please provide a valid number of years of experience (0-50 years). " +
		"You can say something like '3 years' or just '3'. " +
		"**How many years of professional experience do you have?**"

	msgPositionRetry = "Please provide the position you're interested in (at least 2 characters). " +
		"**What position(s) are you interested in or applying for?**"

	msgLocationRetry = "Please provide your current location (at least 2 characters). " +
		"**What's your current location (city, country)?**"

	msgTechStackPrompt = "Perfect! Now let's talk about your technical skills. 💻\n\n" +
		"**Please list your tech stack** - including programming languages, frameworks, " +
		"databases, tools, and any other technologies you're proficient in. " +
		"You can separate them with commas.\n\n" +
		"*Example: Python, JavaScript, React, Django, PostgreSQL, Docker*"

	msgTechStackRetry = "Please provide at least one technology from your tech stack. " +
		"You can separate multiple technologies with commas. " +
		"**Please list your tech stack:**"

	msgScreeningComplete = "Our initial screening is complete! If you have any questions about the position " +
		"or TalentScout, I'm happy to help. Otherwise, you can type 'exit' to end our conversation."

	msgNotUnderstood = "I'm not sure I understand. Could you please provide the information I requested? " +
		"If you need help, you can type 'exit' to end our conversation."
)
