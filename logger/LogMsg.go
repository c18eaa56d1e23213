package logger

const StartupMsg = "Pong 啟動 backend: %s, fps: %d"
const ShutdownMsg = "Pong 結束"

const MusicLoadedMsg = "背景音樂已載入: %s, volume: %.2f"
const MusicDisabledMsg = "背景音樂已關閉"
const MusicStoppedMsg = "背景音樂已停止"

const GameStartMsg = "遊戲開始！"
const QuitRequestMsg = "玩家要求離開 mode: %s, score: %d - %d"

const PaddleHitMsg = "%s 球拍擊球 ball: (%d,%d)"
const ScoreMsg = "%s 得分！ Player: %d, Opponent: %d"
