package constant

// Turn roles accepted on the wire. Unknown roles are coerced to user when
// building a model request.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"
)

// Step labels. Advisory UI metadata only: no transition table is enforced
// and any label may follow any other.
const (
	StepGreeting        = "greeting"
	StepInfoGathering   = "info_gathering"
	StepConclusion      = "conclusion"
	StepEnd             = "end"
	StepQAExactMatch    = "qa_exact_match"
	StepQAPartialMatch  = "qa_partial_match"
	StepOffTopic        = "off_topic_response"
	StepChatbotResponse = "chatbot_response"
	StepErrorResponse   = "error_response"
	StepUserInput       = "user_input"
)

// OffTopicResponse is returned verbatim when a question carries no
// real-estate vocabulary.
const OffTopicResponse = "I specialize in the US Property Market and WAIV services, including evaluations, inspections, and market trends. " +
	"While I may not have accurate information about other topics, I'd be happy to assist you with " +
	"any questions related to real estate in the United States or WAIV services. What would you like to know?"

// ApologyResponse substitutes generated content whenever the completion
// service fails. The turn itself still succeeds.
const ApologyResponse = "I apologize, but I'm having trouble processing your request. " +
	"Can I assist you with anything else about the US property market or WAIV services?"

// AdditionalInfoHeader labels the generated section appended to a partial
// Q&A match.
const AdditionalInfoHeader = "Additional information:"
