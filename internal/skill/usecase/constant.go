package usecase

const (
	DefaultChatIntent = "ChatBotIntent"
	DefaultSlotName   = "user_message"
)

// Spoken messages.
const (
	msgLaunch       = "私はAIチャットボットです。何でも聞いてください。"
	msgAskAnything  = "なにか話しかけてください。"
	msgDefaultInput = "こんにちは"
	msgHelp         = "自由に話しかけてみてください。"
	msgGoodbye      = "さようなら。"
	msgFallback     = "すみません、よくわかりません。"
	msgFallbackAsk  = "お助けできることは何かありますか？"
	msgReflector    = "あなたが呼び出したインテントはこちらです。"
	msgApology      = "申し訳ありません。もう一度お試しください。"
)

const systemPrompt = "あなたは音声対話型チャットボットです。以下の制約にしたがって回答してください。\n\n" +
	"制約:\n" +
	"- ユーザーのメッセージに句読点を補ってから回答します\n" +
	"- 簡潔な短い文章で話します\n" +
	"- 質問の答えがわからない場合は「わかりません」と答えます"
