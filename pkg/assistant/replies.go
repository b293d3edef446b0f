package assistant

// Reply bodies are markdown-like text rendered by the chat client.

const (
	algorithmsReply = `**Algorithms** - Step-by-step procedures for problem-solving

## Core Concepts:
• **Time Complexity**: Runtime growth analysis
  - O(1): Constant time
  - O(log n): Logarithmic efficiency  
  - O(n): Linear scaling
  - O(n²): Quadratic growth

• **Space Complexity**: Memory usage patterns

## Key Algorithms:
- **Sorting**: QuickSort, MergeSort, BubbleSort
- **Searching**: Binary Search, Linear Search
- **Graph Theory**: Dijkstra, BFS, DFS

*Need specific algorithm details? Just ask!*`

	dataStructuresReply = `**Data Structures** - Efficient data organization methods

## Structure Types:
• **Arrays**: Contiguous memory, instant access
• **Linked Lists**: Dynamic sizing, sequential access  
• **Stacks**: LIFO principle
• **Queues**: FIFO processing
• **Trees**: Hierarchical organization
• **Graphs**: Network relationships
• **Hash Tables**: Key-value mapping

## Usage Guide:
- **Arrays**: Fixed size, random access needed
- **Linked Lists**: Frequent insertions/deletions
- **Hash Tables**: Fast lookup requirements
- **Trees**: Sorted or hierarchical data

*Which structure interests you most?*`

	machineLearningReply = `**Machine Learning** - AI-driven pattern recognition

## Learning Paradigms:
• **Supervised**: Labeled data training
• **Unsupervised**: Pattern discovery  
• **Reinforcement**: Reward-based learning

## Core Algorithms:
- Linear/Logistic Regression
- Decision Trees & Random Forests
- Neural Networks & Deep Learning
- K-Means Clustering

## Applications:
- Computer Vision
- Natural Language Processing  
- Recommendation Engines
- Predictive Analytics

*Ready to dive deeper into ML concepts?*`

	cloudComputingReply = `**Cloud Computing** - On-demand computing services

## Service Models:
• **IaaS**: Infrastructure (VMs, storage)
• **PaaS**: Development platforms  
• **SaaS**: Ready applications

## Deployment Options:
- **Public Cloud**: AWS, Azure, GCP
- **Private Cloud**: On-premises solutions
- **Hybrid Cloud**: Mixed environment

## Key Benefits:
- Scalability & Elasticity
- Cost Optimization
- Global Availability
- Managed Services

*Exploring cloud solutions for your projects?*`

	cybersecurityReply = `**Cybersecurity** - Digital protection systems

## Common Threats:
• **Malware**: Viruses, ransomware, trojans
• **Phishing**: Social engineering attacks
• **DDoS**: Service disruption
• **SQL Injection**: Database exploitation

## Protection Layers:
- Network Security & Firewalls
- Encryption & Access Control
- Regular Updates & Patches
- Security Awareness Training

## Best Practices:
- Principle of Least Privilege
- Defense in Depth Strategy
- Regular Security Audits
- Incident Response Planning

*Security concerns for your applications?*`

	frontendReply = `**Frontend Development** - Crafted by **Zain Nadeem** ✨

## Developer Profile:
**Zain Nadeem** - Full-Stack Developer
- 🚀 Modern web technologies enthusiast  
- 🎨 UI/UX design passion
- 🔧 Tech stack: React, Node.js, Python

## Connect:
- **GitHub**: [github.com/the-lazyguy](https://github.com/the-lazyguy)
- **LinkedIn**: [linkedin.com/in/zain-nadeem-917524177](https://www.linkedin.com/in/zain-nadeem-917524177/)

## Technical Excellence:
• React Hooks & Component Architecture
• Responsive Design Systems
• Dark/Light Theme Engine
• Real-time Chat Interface
• Local Storage Management
• Animated UI Components

*Built with precision and user experience focus*`

	complexityReply = `**Time Complexity Analysis**

## Efficiency Metrics:
• **O(1)**: Constant time - fixed duration
• **O(n)**: Linear time - proportional growth  
• **O(n²)**: Quadratic time - squared growth
• **O(log n)**: Logarithmic time - efficient scaling

## Practical Examples:
- Binary Search: O(log n)
- Linear Search: O(n)
- Nested Loops: O(n²)

*Understanding complexity helps optimize performance*`

	languagesReply = `**Programming Languages** - Tool comparison

## Language Strengths:
• **Python**: Readable syntax, data science focus
• **JavaScript**: Web development, browser execution  
• **Java**: Enterprise systems, strong typing

## Use Cases:
- Python: ML, scripting, web backends
- JavaScript: Frontend, full-stack development
- Java: Large-scale systems, Android apps

*Which language or concept interests you?*`

	genericReplyFormat = `I understand you're asking about "%s". 

## Topic Analysis:
• **Core Concepts**: Foundational principles
• **Practical Applications**: Real-world usage  
• **Best Practices**: Industry standards
• **Common Challenges**: Potential obstacles

## Let me help you explore:
Would you prefer a comprehensive overview or focus on specific aspects?

*Your curiosity drives our learning journey*`
)
